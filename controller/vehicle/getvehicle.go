package vehicle

import (
	"errors"
	"net/http"
	"strconv"

	"drivesense/model"
	"drivesense/services"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"gorm.io/gorm"
)

// GetVehicle returns one vehicle with its checklists and their progress.
func GetVehicle(c *gin.Context, db *gorm.DB, firestoreClient *firestore.Client) {
	userId := c.MustGet("userId").(uint)
	vehicleID := c.Param("vehicleid")

	doc, err := firestoreClient.Collection("Vehicles").Doc(vehicleID).Get(c)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load vehicle"})
		return
	}

	var vehicle model.Vehicle
	if err := doc.DataTo(&vehicle); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse vehicle data"})
		return
	}
	vehicle.VehicleID = doc.Ref.ID

	if vehicle.UserID != int(userId) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

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

	// the store returns checklists in no particular order, index by phase
	byPhase := make(map[model.ChecklistPhase]gin.H, len(checklists))
	for _, checklist := range checklists {
		byPhase[checklist.Phase] = gin.H{
			"checklist": checklist,
			"progress":  services.Progress(checklist),
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"vehicle":    vehicle,
		"checklists": byPhase,
	})
}

// RecentVehicles lists the caller's vehicles, newest first.
func RecentVehicles(c *gin.Context, db *gorm.DB, firestoreClient *firestore.Client) {
	userId := c.MustGet("userId").(uint)

	limit := 10
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 50 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		limit = parsed
	}

	iter := firestoreClient.Collection("Vehicles").
		Where("UserID", "==", int(userId)).
		OrderBy("CreatedAt", firestore.Desc).
		Limit(limit).
		Documents(c)
	defer iter.Stop()

	vehicles := make([]model.Vehicle, 0, limit)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load vehicles"})
			return
		}

		var vehicle model.Vehicle
		if err := doc.DataTo(&vehicle); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse vehicle data"})
			return
		}
		vehicle.VehicleID = doc.Ref.ID
		vehicles = append(vehicles, vehicle)
	}

	c.JSON(http.StatusOK, gin.H{"vehicles": vehicles})
}
