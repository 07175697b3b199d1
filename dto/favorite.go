package dto

type AddFavoriteRequest struct {
	VehicleID string `json:"vehicle_id" binding:"required"`
}
