package vehicle

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"drivesense/dto"
	"drivesense/model"
	"drivesense/services"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AnalyzeVehicle runs the analysis pipeline for a searched vehicle:
// record the search, generate the analysis, store the vehicle document
// and seed its default maintenance checklists.
func AnalyzeVehicle(c *gin.Context, db *gorm.DB, firestoreClient *firestore.Client) {
	userId := c.MustGet("userId").(uint)

	var req dto.AnalyzeVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	history := model.SearchHistory{
		UserID: int(userId),
		Brand:  req.Brand,
		Model:  req.Model,
		Year:   req.Year,
	}
	if err := db.Create(&history).Error; err != nil {
		// the search still proceeds when history cannot be recorded
		fmt.Printf("Warning: failed to record search history for user %d: %v\n", userId, err)
	}

	analysis := services.GenerateAnalysis(req.Brand, req.Model, req.Year)

	now := time.Now()
	vehicle := model.Vehicle{
		UserID:    int(userId),
		Brand:     req.Brand,
		Model:     req.Model,
		Year:      req.Year,
		Analysis:  analysis,
		CreatedAt: now,
		UpdatedAt: now,
	}

	vehicleID := uuid.NewString()
	if _, err := firestoreClient.Collection("Vehicles").Doc(vehicleID).Set(c, vehicle); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save vehicle"})
		return
	}
	vehicle.VehicleID = vehicleID

	store := services.NewFirestoreChecklistStore(firestoreClient)
	checklists, err := services.SeedDefaultChecklists(c, store, vehicleID, int(userId))
	if err != nil {
		var partial *services.PartialCreateError
		if errors.As(err, &partial) {
			c.JSON(http.StatusPartialContent, gin.H{
				"message":       "Vehicle analyzed but some default checklists were not created",
				"vehicle":       vehicle,
				"checklists":    checklists,
				"failed_phases": partial.FailedPhases,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":      "Vehicle analyzed but default checklists could not be created",
			"vehicle_id": vehicleID,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Vehicle analyzed successfully",
		"vehicle":    vehicle,
		"checklists": checklists,
	})
}
