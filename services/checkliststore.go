package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"drivesense/model"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	ErrChecklistNotFound  = errors.New("checklist not found")
	ErrStorageUnavailable = errors.New("checklist storage unavailable")
)

// PartialCreateError reports a bulk create where some checklists were
// written and others were not. Each insert is an independent call, so a
// failed phase can be retried without duplicating the ones that made it.
type PartialCreateError struct {
	FailedPhases []model.ChecklistPhase
	Causes       []error
}

func (e *PartialCreateError) Error() string {
	phases := make([]string, len(e.FailedPhases))
	for i, p := range e.FailedPhases {
		phases[i] = string(p)
	}
	return fmt.Sprintf("failed to create checklists for phases: %s", strings.Join(phases, ", "))
}

// ChecklistStore is the persistence boundary for checklist documents.
type ChecklistStore interface {
	LoadChecklists(ctx context.Context, vehicleID string, userID int) ([]model.Checklist, error)
	GetChecklist(ctx context.Context, checklistID string) (model.Checklist, error)
	PersistItemUpdate(ctx context.Context, checklistID string, items []model.ChecklistItem) error
	CreateChecklists(ctx context.Context, checklists []model.Checklist) ([]model.Checklist, error)
	DeleteForVehicle(ctx context.Context, vehicleID string) error
}

const checklistStoreTimeout = 10 * time.Second

// FirestoreChecklistStore keeps checklist documents in the "Checklists"
// collection, one document per (vehicle, phase).
type FirestoreChecklistStore struct {
	Client *firestore.Client
}

func NewFirestoreChecklistStore(client *firestore.Client) *FirestoreChecklistStore {
	return &FirestoreChecklistStore{Client: client}
}

func (s *FirestoreChecklistStore) LoadChecklists(ctx context.Context, vehicleID string, userID int) ([]model.Checklist, error) {
	ctx, cancel := context.WithTimeout(ctx, checklistStoreTimeout)
	defer cancel()

	iter := s.Client.Collection("Checklists").
		Where("VehicleID", "==", vehicleID).
		Where("UserID", "==", userID).
		Documents(ctx)
	defer iter.Stop()

	var checklists []model.Checklist
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, storeError(err)
		}

		var checklist model.Checklist
		if err := doc.DataTo(&checklist); err != nil {
			return nil, fmt.Errorf("decode checklist %s: %w", doc.Ref.ID, err)
		}
		checklist.ChecklistID = doc.Ref.ID
		checklists = append(checklists, checklist)
	}
	return checklists, nil
}

func (s *FirestoreChecklistStore) GetChecklist(ctx context.Context, checklistID string) (model.Checklist, error) {
	ctx, cancel := context.WithTimeout(ctx, checklistStoreTimeout)
	defer cancel()

	doc, err := s.Client.Collection("Checklists").Doc(checklistID).Get(ctx)
	if err != nil {
		return model.Checklist{}, storeError(err)
	}

	var checklist model.Checklist
	if err := doc.DataTo(&checklist); err != nil {
		return model.Checklist{}, fmt.Errorf("decode checklist %s: %w", checklistID, err)
	}
	checklist.ChecklistID = doc.Ref.ID
	return checklist, nil
}

// PersistItemUpdate replaces the whole Items array of one checklist
// document. Callers always send the complete resulting sequence, never a
// per-item patch.
func (s *FirestoreChecklistStore) PersistItemUpdate(ctx context.Context, checklistID string, items []model.ChecklistItem) error {
	ctx, cancel := context.WithTimeout(ctx, checklistStoreTimeout)
	defer cancel()

	_, err := s.Client.Collection("Checklists").Doc(checklistID).Update(ctx, []firestore.Update{
		{Path: "Items", Value: items},
		{Path: "UpdatedAt", Value: firestore.ServerTimestamp},
	})
	if err != nil {
		return storeError(err)
	}
	return nil
}

// CreateChecklists inserts each checklist as its own document. The calls
// are independent: one failing does not roll back the others. Checklists
// that were written come back with their document ids filled in.
func (s *FirestoreChecklistStore) CreateChecklists(ctx context.Context, checklists []model.Checklist) ([]model.Checklist, error) {
	var created []model.Checklist
	var partial *PartialCreateError

	for _, checklist := range checklists {
		docID := uuid.NewString()

		callCtx, cancel := context.WithTimeout(ctx, checklistStoreTimeout)
		_, err := s.Client.Collection("Checklists").Doc(docID).Set(callCtx, checklist)
		cancel()

		if err != nil {
			if partial == nil {
				partial = &PartialCreateError{}
			}
			partial.FailedPhases = append(partial.FailedPhases, checklist.Phase)
			partial.Causes = append(partial.Causes, storeError(err))
			continue
		}

		checklist.ChecklistID = docID
		created = append(created, checklist)
	}

	if partial != nil {
		return created, partial
	}
	return created, nil
}

func (s *FirestoreChecklistStore) DeleteForVehicle(ctx context.Context, vehicleID string) error {
	ctx, cancel := context.WithTimeout(ctx, checklistStoreTimeout)
	defer cancel()

	iter := s.Client.Collection("Checklists").
		Where("VehicleID", "==", vehicleID).
		Documents(ctx)
	defer iter.Stop()

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return storeError(err)
		}
		if _, err := doc.Ref.Delete(ctx); err != nil {
			return storeError(err)
		}
	}
	return nil
}

// storeError maps transport failures onto the service error taxonomy.
func storeError(err error) error {
	if status.Code(err) == codes.NotFound {
		return ErrChecklistNotFound
	}
	if errors.Is(err, context.DeadlineExceeded) || status.Code(err) == codes.DeadlineExceeded {
		return fmt.Errorf("%w: timeout: %v", ErrStorageUnavailable, err)
	}
	return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
}

// ToggleAndPersist toggles one item and writes the new item sequence
// through the store. The updated checklist is returned only after the
// store confirms the write; on failure the caller keeps its prior state,
// so memory never diverges from storage.
func ToggleAndPersist(ctx context.Context, store ChecklistStore, checklist model.Checklist, itemID string) (model.Checklist, error) {
	updated, err := ToggleItem(checklist, itemID, time.Now())
	if err != nil {
		return model.Checklist{}, err
	}
	if err := store.PersistItemUpdate(ctx, checklist.ChecklistID, updated.Items); err != nil {
		return model.Checklist{}, err
	}
	return updated, nil
}

// SeedDefaultChecklists generates and persists the default checklists for
// a freshly analyzed vehicle. On partial failure the returned error is a
// *PartialCreateError and the successfully created checklists are still
// returned.
func SeedDefaultChecklists(ctx context.Context, store ChecklistStore, vehicleID string, userID int) ([]model.Checklist, error) {
	return store.CreateChecklists(ctx, DefaultChecklists(vehicleID, userID))
}
