package vehicle

import (
	"net/http"

	"drivesense/model"
	"drivesense/services"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"gorm.io/gorm"
)

// DeleteVehicle removes a vehicle document and everything hanging off it:
// checklist documents, favorites and reminders.
func DeleteVehicle(c *gin.Context, db *gorm.DB, firestoreClient *firestore.Client) {
	userId := c.MustGet("userId").(uint)
	vehicleID := c.Param("vehicleid")

	docRef := firestoreClient.Collection("Vehicles").Doc(vehicleID)
	doc, err := docRef.Get(c)
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
	if vehicle.UserID != int(userId) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	store := services.NewFirestoreChecklistStore(firestoreClient)
	if err := store.DeleteForVehicle(c, vehicleID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete vehicle checklists"})
		return
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("vehicle_id = ? AND user_id = ?", vehicleID, userId).Delete(&model.Favorite{}).Error; err != nil {
			return err
		}
		return tx.Where("vehicle_id = ? AND user_id = ?", vehicleID, userId).Delete(&model.Reminder{}).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete related records"})
		return
	}

	if _, err := docRef.Delete(c); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete vehicle"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Vehicle deleted successfully",
		"vehicle_id": vehicleID,
	})
}
