package services

import (
	"errors"
	"fmt"
	"time"

	"drivesense/model"
)

var ErrItemNotFound = errors.New("checklist item not found")

// ToggleItem flips the completion flag of one item and returns a copy of
// the checklist with the new item slice. CompletedAt is stamped with now
// when the item becomes completed and cleared when it is reopened. The
// input checklist is never mutated, so callers can keep it around until
// the store confirms the write.
func ToggleItem(checklist model.Checklist, itemID string, now time.Time) (model.Checklist, error) {
	index := -1
	for i := range checklist.Items {
		if checklist.Items[i].ID == itemID {
			index = i
			break
		}
	}
	if index == -1 {
		return model.Checklist{}, fmt.Errorf("%w: %q", ErrItemNotFound, itemID)
	}

	items := make([]model.ChecklistItem, len(checklist.Items))
	copy(items, checklist.Items)

	item := items[index]
	item.Completed = !item.Completed
	if item.Completed {
		completedAt := now
		item.CompletedAt = &completedAt
	} else {
		item.CompletedAt = nil
	}
	items[index] = item

	updated := checklist
	updated.Items = items
	return updated, nil
}

// Progress derives the completion state of a checklist. A checklist with
// no items reports 0%, never a division fault.
func Progress(checklist model.Checklist) model.ChecklistProgress {
	total := len(checklist.Items)
	completed := 0
	for _, item := range checklist.Items {
		if item.Completed {
			completed++
		}
	}

	percentage := 0.0
	if total > 0 {
		percentage = 100 * float64(completed) / float64(total)
	}

	return model.ChecklistProgress{
		Completed:  completed,
		Total:      total,
		Percentage: percentage,
	}
}

// DefaultChecklists builds the canonical 48h and 30days checklists for a
// newly analyzed vehicle. Generation is pure; the caller persists the
// result through a ChecklistStore. No longterm checklist is generated,
// that phase starts empty until the product grows a catalog for it.
func DefaultChecklists(vehicleID string, userID int) []model.Checklist {
	now := time.Now()
	return []model.Checklist{
		{
			VehicleID: vehicleID,
			UserID:    userID,
			Phase:     model.PhaseFortyEightHours,
			Items: []model.ChecklistItem{
				{ID: "1", Title: "Check oil level", Description: "Make sure the level is within range"},
				{ID: "2", Title: "Test all lights", Description: "Headlights, tail lights, turn signals and brake lights"},
				{ID: "3", Title: "Check tires", Description: "Pressure and tread wear"},
				{ID: "4", Title: "Test air conditioning", Description: "Verify it cools properly"},
				{ID: "5", Title: "Check documentation", Description: "Registration, owner manual and spare key"},
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			VehicleID: vehicleID,
			UserID:    userID,
			Phase:     model.PhaseThirtyDays,
			Items: []model.ChecklistItem{
				{ID: "1", Title: "Full suspension inspection", Description: "Check shock absorbers and springs"},
				{ID: "2", Title: "Wheel alignment and balancing", Description: "Keeps the car stable and saves fuel"},
				{ID: "3", Title: "Check battery", Description: "Test charge and terminals"},
				{ID: "4", Title: "Replace filters", Description: "Air, oil and fuel"},
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}
