package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"drivesense/model"
)

// fakeChecklistStore records persisted state in memory and can be told to
// fail specific operations.
type fakeChecklistStore struct {
	persisted    map[string][]model.ChecklistItem
	created      []model.Checklist
	persistErr   error
	failPhases   map[model.ChecklistPhase]error
	persistCalls int
}

func newFakeChecklistStore() *fakeChecklistStore {
	return &fakeChecklistStore{
		persisted:  map[string][]model.ChecklistItem{},
		failPhases: map[model.ChecklistPhase]error{},
	}
}

func (f *fakeChecklistStore) LoadChecklists(ctx context.Context, vehicleID string, userID int) ([]model.Checklist, error) {
	return nil, nil
}

func (f *fakeChecklistStore) GetChecklist(ctx context.Context, checklistID string) (model.Checklist, error) {
	return model.Checklist{}, ErrChecklistNotFound
}

func (f *fakeChecklistStore) PersistItemUpdate(ctx context.Context, checklistID string, items []model.ChecklistItem) error {
	f.persistCalls++
	if f.persistErr != nil {
		return f.persistErr
	}
	f.persisted[checklistID] = items
	return nil
}

func (f *fakeChecklistStore) CreateChecklists(ctx context.Context, checklists []model.Checklist) ([]model.Checklist, error) {
	var created []model.Checklist
	var partial *PartialCreateError

	for i, checklist := range checklists {
		if cause, ok := f.failPhases[checklist.Phase]; ok {
			if partial == nil {
				partial = &PartialCreateError{}
			}
			partial.FailedPhases = append(partial.FailedPhases, checklist.Phase)
			partial.Causes = append(partial.Causes, cause)
			continue
		}
		checklist.ChecklistID = fmt.Sprintf("cl-%d", i+1)
		f.created = append(f.created, checklist)
		created = append(created, checklist)
	}

	if partial != nil {
		return created, partial
	}
	return created, nil
}

func (f *fakeChecklistStore) DeleteForVehicle(ctx context.Context, vehicleID string) error {
	return nil
}

func TestToggleAndPersist_WritesBeforeReturning(t *testing.T) {
	store := newFakeChecklistStore()
	checklist := testChecklist()

	updated, err := ToggleAndPersist(context.Background(), store, checklist, "1")
	if err != nil {
		t.Fatalf("ToggleAndPersist returned error: %v", err)
	}

	if !updated.Items[0].Completed {
		t.Error("Expected returned checklist to have item 1 completed")
	}

	persisted, ok := store.persisted["cl-1"]
	if !ok {
		t.Fatal("Expected the new item sequence to be persisted")
	}
	if len(persisted) != len(checklist.Items) {
		t.Fatalf("Persisted %d items, expected %d", len(persisted), len(checklist.Items))
	}
	if !persisted[0].Completed {
		t.Error("Persisted sequence does not carry the toggle")
	}
}

func TestToggleAndPersist_StorageFailure(t *testing.T) {
	store := newFakeChecklistStore()
	store.persistErr = fmt.Errorf("%w: connection refused", ErrStorageUnavailable)
	checklist := testChecklist()

	_, err := ToggleAndPersist(context.Background(), store, checklist, "1")
	if !errors.Is(err, ErrStorageUnavailable) {
		t.Fatalf("Expected ErrStorageUnavailable, got %v", err)
	}

	// nothing was persisted, and the caller's checklist is unchanged
	if len(store.persisted) != 0 {
		t.Error("Nothing should have been persisted")
	}
	if checklist.Items[0].Completed {
		t.Error("Caller state must stay unchanged when persistence fails")
	}
}

func TestToggleAndPersist_UnknownItemSkipsStore(t *testing.T) {
	store := newFakeChecklistStore()
	checklist := testChecklist()

	_, err := ToggleAndPersist(context.Background(), store, checklist, "missing-1")
	if !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("Expected ErrItemNotFound, got %v", err)
	}
	if store.persistCalls != 0 {
		t.Errorf("Store should not be called for an unknown item, got %d calls", store.persistCalls)
	}
}

func TestSeedDefaultChecklists_CreatesBoth(t *testing.T) {
	store := newFakeChecklistStore()

	created, err := SeedDefaultChecklists(context.Background(), store, "v1", 1)
	if err != nil {
		t.Fatalf("SeedDefaultChecklists returned error: %v", err)
	}

	if len(created) != 2 {
		t.Fatalf("Expected 2 created checklists, got %d", len(created))
	}
	for _, checklist := range created {
		if checklist.ChecklistID == "" {
			t.Errorf("Checklist %s came back without an id", checklist.Phase)
		}
	}
}

func TestSeedDefaultChecklists_PartialFailure(t *testing.T) {
	store := newFakeChecklistStore()
	store.failPhases[model.PhaseThirtyDays] = errors.New("write failed")

	created, err := SeedDefaultChecklists(context.Background(), store, "v1", 1)

	var partial *PartialCreateError
	if !errors.As(err, &partial) {
		t.Fatalf("Expected PartialCreateError, got %v", err)
	}
	if len(partial.FailedPhases) != 1 || partial.FailedPhases[0] != model.PhaseThirtyDays {
		t.Errorf("Expected 30days to be the failed phase, got %v", partial.FailedPhases)
	}

	// the 48h insert is independent and must survive
	if len(created) != 1 || created[0].Phase != model.PhaseFortyEightHours {
		t.Errorf("Expected the 48h checklist to be created, got %v", created)
	}
}
