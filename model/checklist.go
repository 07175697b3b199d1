// model/checklist.go
package model

import (
	"time"
)

// ChecklistPhase buckets a checklist by time since the vehicle was acquired.
type ChecklistPhase string

const (
	PhaseFortyEightHours ChecklistPhase = "48h"
	PhaseThirtyDays      ChecklistPhase = "30days"
	PhaseLongTerm        ChecklistPhase = "longterm"
)

func (p ChecklistPhase) Valid() bool {
	switch p {
	case PhaseFortyEightHours, PhaseThirtyDays, PhaseLongTerm:
		return true
	}
	return false
}

// ChecklistItem is one task inside a checklist document. CompletedAt is
// set exactly while Completed is true.
type ChecklistItem struct {
	ID          string     `firestore:"ID" json:"id"`
	Title       string     `firestore:"Title" json:"title"`
	Description string     `firestore:"Description" json:"description"`
	Completed   bool       `firestore:"Completed" json:"completed"`
	CompletedAt *time.Time `firestore:"CompletedAt,omitempty" json:"completed_at,omitempty"`
}

// Checklist is a document in the "Checklists" Firestore collection.
// Items keep insertion order, which is also display order. A vehicle has
// at most one checklist per phase.
type Checklist struct {
	ChecklistID string          `firestore:"-" json:"checklist_id"`
	VehicleID   string          `firestore:"VehicleID" json:"vehicle_id"`
	UserID      int             `firestore:"UserID" json:"user_id"`
	Phase       ChecklistPhase  `firestore:"Phase" json:"phase"`
	Items       []ChecklistItem `firestore:"Items" json:"items"`
	CreatedAt   time.Time       `firestore:"CreatedAt" json:"created_at"`
	UpdatedAt   time.Time       `firestore:"UpdatedAt" json:"updated_at"`
}

type ChecklistProgress struct {
	Completed  int     `json:"completed"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}
