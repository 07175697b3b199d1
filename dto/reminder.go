package dto

type CreateReminderRequest struct {
	VehicleID   string `json:"vehicle_id" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	DueDate     string `json:"due_date" binding:"required"` // RFC 3339
}
