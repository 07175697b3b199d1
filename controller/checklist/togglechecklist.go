package checklist

import (
	"errors"
	"net/http"

	"drivesense/dto"
	"drivesense/services"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ToggleChecklistItem flips one item's completion state. The new item
// sequence is written to the store before anything is reported back, so a
// failed write never leaves the client looking at unsaved state.
func ToggleChecklistItem(c *gin.Context, db *gorm.DB, firestoreClient *firestore.Client) {
	userId := c.MustGet("userId").(uint)
	checklistID := c.Param("checklistid")

	var req dto.ToggleChecklistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	store := services.NewFirestoreChecklistStore(firestoreClient)
	checklist, err := store.GetChecklist(c, checklistID)
	if err != nil {
		if errors.Is(err, services.ErrChecklistNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Checklist not found"})
			return
		}
		if errors.Is(err, services.ErrStorageUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Checklist storage unavailable"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load checklist"})
		return
	}

	if checklist.UserID != int(userId) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	updated, err := services.ToggleAndPersist(c, store, checklist, req.ItemID)
	if err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Checklist item not found"})
			return
		}
		if errors.Is(err, services.ErrStorageUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Checklist storage unavailable"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update checklist item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Checklist item updated successfully",
		"checklist": updated,
		"progress":  services.Progress(updated),
	})
}
