package dto

type AnalyzeVehicleRequest struct {
	Brand string `json:"brand" binding:"required"`
	Model string `json:"model" binding:"required"`
	Year  int    `json:"year" binding:"required,gte=1950,lte=2100"`
}
