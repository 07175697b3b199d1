package model

import "testing"

func TestChecklistPhaseValid(t *testing.T) {
	for _, phase := range []ChecklistPhase{PhaseFortyEightHours, PhaseThirtyDays, PhaseLongTerm} {
		if !phase.Valid() {
			t.Errorf("Phase %q should be valid", phase)
		}
	}

	for _, phase := range []ChecklistPhase{"", "1year", "48H"} {
		if phase.Valid() {
			t.Errorf("Phase %q should not be valid", phase)
		}
	}
}
