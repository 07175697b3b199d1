package services

import (
	"errors"
	"testing"
	"time"

	"drivesense/model"
)

func testChecklist() model.Checklist {
	return model.Checklist{
		ChecklistID: "cl-1",
		VehicleID:   "v1",
		UserID:      1,
		Phase:       model.PhaseFortyEightHours,
		Items: []model.ChecklistItem{
			{ID: "1", Title: "Check oil level", Description: "Make sure the level is within range"},
			{ID: "2", Title: "Test all lights", Description: "Headlights, tail lights, turn signals and brake lights"},
			{ID: "3", Title: "Check tires", Description: "Pressure and tread wear"},
		},
	}
}

func TestToggleItem_CompletesItem(t *testing.T) {
	checklist := testChecklist()
	before := time.Now()

	updated, err := ToggleItem(checklist, "3", time.Now())
	if err != nil {
		t.Fatalf("ToggleItem returned error: %v", err)
	}

	item := updated.Items[2]
	if !item.Completed {
		t.Error("Expected item 3 to be completed")
	}
	if item.CompletedAt == nil {
		t.Fatal("Expected CompletedAt to be set")
	}
	if item.CompletedAt.Before(before) {
		t.Errorf("CompletedAt %v is before the call time %v", item.CompletedAt, before)
	}

	for _, other := range []int{0, 1} {
		if updated.Items[other].Completed {
			t.Errorf("Item %s should not have been touched", updated.Items[other].ID)
		}
		if updated.Items[other].CompletedAt != nil {
			t.Errorf("Item %s should not have a completion timestamp", updated.Items[other].ID)
		}
	}
}

func TestToggleItem_Involution(t *testing.T) {
	checklist := testChecklist()

	once, err := ToggleItem(checklist, "2", time.Now())
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	twice, err := ToggleItem(once, "2", time.Now())
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}

	item := twice.Items[1]
	if item.Completed {
		t.Error("Expected item to be back to not completed")
	}
	if item.CompletedAt != nil {
		t.Error("Expected CompletedAt to be cleared after toggling back")
	}
}

func TestToggleItem_UnknownItem(t *testing.T) {
	checklist := testChecklist()

	_, err := ToggleItem(checklist, "missing-1", time.Now())
	if !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("Expected ErrItemNotFound, got %v", err)
	}

	// the input must be untouched
	for _, item := range checklist.Items {
		if item.Completed || item.CompletedAt != nil {
			t.Errorf("Item %s was mutated by a failed toggle", item.ID)
		}
	}
}

func TestToggleItem_DoesNotMutateInput(t *testing.T) {
	checklist := testChecklist()

	_, err := ToggleItem(checklist, "1", time.Now())
	if err != nil {
		t.Fatalf("ToggleItem returned error: %v", err)
	}

	if checklist.Items[0].Completed {
		t.Error("Input checklist was mutated")
	}
	if checklist.Items[0].CompletedAt != nil {
		t.Error("Input checklist item got a completion timestamp")
	}
}

func TestProgress_CountsAndPercentage(t *testing.T) {
	checklist := model.Checklist{
		Items: []model.ChecklistItem{
			{ID: "1", Completed: true},
			{ID: "2"},
			{ID: "3"},
			{ID: "4"},
			{ID: "5"},
		},
	}

	progress := Progress(checklist)
	if progress.Completed != 1 || progress.Total != 5 {
		t.Errorf("Expected 1/5, got %d/%d", progress.Completed, progress.Total)
	}
	if progress.Percentage != 20 {
		t.Errorf("Expected 20%%, got %v", progress.Percentage)
	}
	if progress.Completed > progress.Total {
		t.Error("Completed exceeds total")
	}
}

func TestProgress_Bounds(t *testing.T) {
	none := model.Checklist{Items: []model.ChecklistItem{{ID: "1"}, {ID: "2"}}}
	if p := Progress(none); p.Percentage != 0 {
		t.Errorf("Expected 0%% with nothing completed, got %v", p.Percentage)
	}

	all := model.Checklist{Items: []model.ChecklistItem{
		{ID: "1", Completed: true},
		{ID: "2", Completed: true},
	}}
	if p := Progress(all); p.Percentage != 100 {
		t.Errorf("Expected 100%% with everything completed, got %v", p.Percentage)
	}
}

func TestProgress_EmptyChecklist(t *testing.T) {
	progress := Progress(model.Checklist{})
	if progress.Total != 0 || progress.Completed != 0 {
		t.Errorf("Expected 0/0, got %d/%d", progress.Completed, progress.Total)
	}
	if progress.Percentage != 0 {
		t.Errorf("Expected a defined 0%% for an empty checklist, got %v", progress.Percentage)
	}
}

func TestDefaultChecklists_Shape(t *testing.T) {
	checklists := DefaultChecklists("v1", 1)

	if len(checklists) != 2 {
		t.Fatalf("Expected 2 checklists, got %d", len(checklists))
	}

	byPhase := map[model.ChecklistPhase]model.Checklist{}
	for _, checklist := range checklists {
		byPhase[checklist.Phase] = checklist
	}

	fortyEight, ok := byPhase[model.PhaseFortyEightHours]
	if !ok {
		t.Fatal("Missing 48h checklist")
	}
	if len(fortyEight.Items) != 5 {
		t.Errorf("Expected 5 items in 48h checklist, got %d", len(fortyEight.Items))
	}

	thirtyDays, ok := byPhase[model.PhaseThirtyDays]
	if !ok {
		t.Fatal("Missing 30days checklist")
	}
	if len(thirtyDays.Items) != 4 {
		t.Errorf("Expected 4 items in 30days checklist, got %d", len(thirtyDays.Items))
	}

	if _, ok := byPhase[model.PhaseLongTerm]; ok {
		t.Error("No longterm checklist should be generated by default")
	}

	for _, checklist := range checklists {
		if checklist.VehicleID != "v1" || checklist.UserID != 1 {
			t.Errorf("Checklist %s has wrong owners: %s/%d", checklist.Phase, checklist.VehicleID, checklist.UserID)
		}
		for _, item := range checklist.Items {
			if item.Completed {
				t.Errorf("Item %s/%s starts completed", checklist.Phase, item.ID)
			}
			if item.CompletedAt != nil {
				t.Errorf("Item %s/%s starts with a completion timestamp", checklist.Phase, item.ID)
			}
			if item.Title == "" || item.Description == "" {
				t.Errorf("Item %s/%s is missing text", checklist.Phase, item.ID)
			}
		}
	}
}

func TestDefaultChecklists_Deterministic(t *testing.T) {
	first := DefaultChecklists("v1", 1)
	second := DefaultChecklists("v2", 2)

	if len(first) != len(second) {
		t.Fatalf("Different checklist counts: %d vs %d", len(first), len(second))
	}

	for i := range first {
		a, b := first[i], second[i]
		if a.Phase != b.Phase {
			t.Errorf("Phase mismatch at %d: %s vs %s", i, a.Phase, b.Phase)
		}
		if len(a.Items) != len(b.Items) {
			t.Fatalf("Item count mismatch for %s: %d vs %d", a.Phase, len(a.Items), len(b.Items))
		}
		for j := range a.Items {
			if a.Items[j].ID != b.Items[j].ID ||
				a.Items[j].Title != b.Items[j].Title ||
				a.Items[j].Description != b.Items[j].Description {
				t.Errorf("Item %s/%s differs between vehicles", a.Phase, a.Items[j].ID)
			}
		}
	}
}
