// model/vehicle.go
package model

import (
	"time"
)

// Vehicle is an analyzed vehicle document in the "Vehicles" Firestore
// collection. The document id is a generated UUID.
type Vehicle struct {
	VehicleID string          `firestore:"-" json:"vehicle_id"`
	UserID    int             `firestore:"UserID" json:"user_id"`
	Brand     string          `firestore:"Brand" json:"brand"`
	Model     string          `firestore:"Model" json:"model"`
	Year      int             `firestore:"Year" json:"year"`
	Analysis  VehicleAnalysis `firestore:"Analysis" json:"analysis"`
	CreatedAt time.Time       `firestore:"CreatedAt" json:"created_at"`
	UpdatedAt time.Time       `firestore:"UpdatedAt" json:"updated_at"`
}

// VehicleAnalysis is the AI analysis payload attached to a vehicle.
// The shape is fixed so consumers never deal with an open-ended record.
type VehicleAnalysis struct {
	Vehicle         string          `firestore:"Vehicle" json:"vehicle"`
	Score           float64         `firestore:"Score" json:"score"`
	Recommendation  string          `firestore:"Recommendation" json:"recommendation"`
	WorthIt         bool            `firestore:"WorthIt" json:"worth_it"`
	Summary         string          `firestore:"Summary" json:"summary"`
	Pros            []string        `firestore:"Pros" json:"pros"`
	Cons            []string        `firestore:"Cons" json:"cons"`
	CommonIssues    []string        `firestore:"CommonIssues" json:"common_issues"`
	FuelConsumption FuelConsumption `firestore:"FuelConsumption" json:"fuel_consumption"`
	MaintenanceCost string          `firestore:"MaintenanceCost" json:"maintenance_cost"`
	TargetAudience  string          `firestore:"TargetAudience" json:"target_audience"`
	Competitors     []string        `firestore:"Competitors" json:"competitors"`
	Recalls         []Recall        `firestore:"Recalls" json:"recalls"`
	CareTips        []string        `firestore:"CareTips" json:"care_tips"`
}

type FuelConsumption struct {
	City    string `firestore:"City" json:"city"`
	Highway string `firestore:"Highway" json:"highway"`
}

type Recall struct {
	Title       string `firestore:"Title" json:"title"`
	Severity    string `firestore:"Severity" json:"severity"`
	Status      string `firestore:"Status" json:"status"`
	Description string `firestore:"Description" json:"description"`
}
