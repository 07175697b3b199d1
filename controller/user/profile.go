package user

import (
	"errors"
	"net/http"

	"drivesense/dto"
	"drivesense/middleware"
	"drivesense/model"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func UserController(router *gin.Engine, db *gorm.DB, firestoreClient *firestore.Client) {
	routes := router.Group("/user", middleware.AccessTokenMiddleware())
	{
		routes.GET("/profile", func(c *gin.Context) {
			GetProfile(c, db)
		})
		routes.PUT("/profile", func(c *gin.Context) {
			UpdateProfile(c, db)
		})
	}
}

func GetProfile(c *gin.Context, db *gorm.DB) {
	userId := c.MustGet("userId").(uint)

	var user model.User
	if err := db.Where("user_id = ?", userId).First(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user"})
		return
	}

	var profile model.UserProfile
	err := db.Where("user_id = ?", userId).First(&profile).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"userId": user.UserID,
			"name":   user.Name,
			"email":  user.Email,
		},
		"profile": gin.H{
			"current_vehicle_brand": profile.CurrentVehicleBrand,
			"current_vehicle_model": profile.CurrentVehicleModel,
			"current_vehicle_year":  profile.CurrentVehicleYear,
			"current_mileage":       profile.CurrentMileage,
			"usage_intensity":       profile.UsageIntensity,
			"notify_by_push":        profile.NotifyByPush,
			"notify_by_email":       profile.NotifyByEmail,
		},
	})
}

// UpdateProfile upserts the caller's profile row. Only fields present in
// the request are changed.
func UpdateProfile(c *gin.Context, db *gorm.DB) {
	userId := c.MustGet("userId").(uint)

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	var profile model.UserProfile
	err := db.Where("user_id = ?", userId).First(&profile).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
			return
		}
		profile = model.UserProfile{UserID: int(userId)}
		if err := db.Create(&profile).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create profile"})
			return
		}
	}

	updates := map[string]interface{}{}
	if req.CurrentVehicleBrand != "" {
		updates["current_vehicle_brand"] = req.CurrentVehicleBrand
	}
	if req.CurrentVehicleModel != "" {
		updates["current_vehicle_model"] = req.CurrentVehicleModel
	}
	if req.CurrentVehicleYear != 0 {
		updates["current_vehicle_year"] = req.CurrentVehicleYear
	}
	if req.CurrentMileage != 0 {
		updates["current_mileage"] = req.CurrentMileage
	}
	if req.UsageIntensity != "" {
		updates["usage_intensity"] = req.UsageIntensity
	}
	if req.NotifyByPush != nil {
		updates["notify_by_push"] = *req.NotifyByPush
	}
	if req.NotifyByEmail != nil {
		updates["notify_by_email"] = *req.NotifyByEmail
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		return
	}

	if err := db.Model(&profile).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully"})
}
