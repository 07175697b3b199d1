package checklist

import (
	"errors"
	"net/http"

	"drivesense/model"
	"drivesense/services"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetChecklists returns a vehicle's checklists indexed by phase, each with
// derived progress.
func GetChecklists(c *gin.Context, db *gorm.DB, firestoreClient *firestore.Client) {
	userId := c.MustGet("userId").(uint)
	vehicleID := c.Param("vehicleid")

	store := services.NewFirestoreChecklistStore(firestoreClient)
	checklists, err := store.LoadChecklists(c, vehicleID, int(userId))
	if err != nil {
		if errors.Is(err, services.ErrStorageUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Checklist storage unavailable"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load checklists"})
		return
	}

	byPhase := make(map[model.ChecklistPhase]gin.H, len(checklists))
	for _, checklist := range checklists {
		byPhase[checklist.Phase] = gin.H{
			"checklist": checklist,
			"progress":  services.Progress(checklist),
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"vehicle_id": vehicleID,
		"checklists": byPhase,
	})
}
