package reminder

import (
	"net/http"
	"strconv"
	"time"

	"drivesense/dto"
	"drivesense/middleware"
	"drivesense/model"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func ReminderController(router *gin.Engine, db *gorm.DB, firestoreClient *firestore.Client) {
	routes := router.Group("/reminder", middleware.AccessTokenMiddleware())
	{
		routes.POST("", func(c *gin.Context) {
			CreateReminder(c, db)
		})
		routes.GET("", func(c *gin.Context) {
			PendingReminders(c, db)
		})
		routes.PUT("/:reminderid/finish", func(c *gin.Context) {
			FinishReminder(c, db)
		})
		routes.DELETE("/:reminderid", func(c *gin.Context) {
			DeleteReminder(c, db)
		})
	}
}

func CreateReminder(c *gin.Context, db *gorm.DB) {
	userId := c.MustGet("userId").(uint)

	var req dto.CreateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	dueDate, err := time.Parse(time.RFC3339, req.DueDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid due date, expected RFC 3339"})
		return
	}

	reminder := model.Reminder{
		UserID:      int(userId),
		VehicleID:   req.VehicleID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     dueDate,
	}
	if err := db.Create(&reminder).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create reminder"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Reminder created successfully",
		"reminder_id": reminder.ReminderID,
	})
}

func PendingReminders(c *gin.Context, db *gorm.DB) {
	userId := c.MustGet("userId").(uint)

	var reminders []model.Reminder
	if err := db.Where("user_id = ? AND completed = ?", userId, false).
		Order("due_date ASC").
		Limit(20).
		Find(&reminders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load reminders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reminders": reminders})
}

// FinishReminder toggles a reminder between done and pending, the same
// way checklist items are toggled.
func FinishReminder(c *gin.Context, db *gorm.DB) {
	userId := c.MustGet("userId").(uint)

	reminderID, err := strconv.Atoi(c.Param("reminderid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reminder ID"})
		return
	}

	var reminder model.Reminder
	if err := db.Where("reminder_id = ? AND user_id = ?", reminderID, userId).First(&reminder).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Reminder not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load reminder"})
		return
	}

	var message string
	updates := map[string]interface{}{}
	if reminder.Completed {
		updates["completed"] = false
		updates["completed_at"] = nil
		message = "Reminder reopened successfully"
	} else {
		now := time.Now()
		updates["completed"] = true
		updates["completed_at"] = now
		message = "Reminder completed successfully"
	}

	if err := db.Model(&reminder).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update reminder"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     message,
		"reminder_id": reminderID,
	})
}

func DeleteReminder(c *gin.Context, db *gorm.DB) {
	userId := c.MustGet("userId").(uint)

	reminderID, err := strconv.Atoi(c.Param("reminderid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reminder ID"})
		return
	}

	result := db.Where("reminder_id = ? AND user_id = ?", reminderID, userId).Delete(&model.Reminder{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete reminder"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Reminder not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reminder deleted successfully"})
}
