package dto

type ToggleChecklistItemRequest struct {
	ItemID string `json:"item_id" binding:"required"`
}
