package dto

type UpdateProfileRequest struct {
	CurrentVehicleBrand string `json:"current_vehicle_brand"`
	CurrentVehicleModel string `json:"current_vehicle_model"`
	CurrentVehicleYear  int    `json:"current_vehicle_year"`
	CurrentMileage      int    `json:"current_mileage"`
	UsageIntensity      string `json:"usage_intensity" binding:"omitempty,oneof=low medium high"`
	NotifyByPush        *bool  `json:"notify_by_push"`
	NotifyByEmail       *bool  `json:"notify_by_email"`
}
