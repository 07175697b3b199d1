package services

import (
	"reflect"
	"testing"
)

func TestGenerateAnalysis_VehicleLabel(t *testing.T) {
	analysis := GenerateAnalysis("Honda", "Civic", 2020)
	if analysis.Vehicle != "Honda Civic 2020" {
		t.Errorf("Unexpected vehicle label: %q", analysis.Vehicle)
	}
}

func TestGenerateAnalysis_RequiredFields(t *testing.T) {
	analysis := GenerateAnalysis("Honda", "Civic", 2020)

	if analysis.Summary == "" {
		t.Error("Summary must not be empty")
	}
	if analysis.Score < 0 || analysis.Score > 10 {
		t.Errorf("Score out of range: %v", analysis.Score)
	}
	if len(analysis.CareTips) == 0 {
		t.Error("Expected care tips")
	}
	if analysis.FuelConsumption.City == "" || analysis.FuelConsumption.Highway == "" {
		t.Error("Expected fuel consumption figures")
	}
}

func TestGenerateAnalysis_Deterministic(t *testing.T) {
	first := GenerateAnalysis("Honda", "Civic", 2020)
	second := GenerateAnalysis("Honda", "Civic", 2020)

	if !reflect.DeepEqual(first, second) {
		t.Error("Two runs over the same vehicle must produce the same analysis")
	}
}
