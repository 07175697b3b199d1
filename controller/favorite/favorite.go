package favorite

import (
	"net/http"

	"drivesense/dto"
	"drivesense/middleware"
	"drivesense/model"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"gorm.io/gorm"
)

func FavoriteController(router *gin.Engine, db *gorm.DB, firestoreClient *firestore.Client) {
	routes := router.Group("/favorite", middleware.AccessTokenMiddleware())
	{
		routes.POST("", func(c *gin.Context) {
			AddFavorite(c, db, firestoreClient)
		})
		routes.GET("", func(c *gin.Context) {
			ListFavorites(c, db, firestoreClient)
		})
		routes.DELETE("/:vehicleid", func(c *gin.Context) {
			RemoveFavorite(c, db, firestoreClient)
		})
	}
}

// AddFavorite is idempotent: saving an already-favorited vehicle succeeds
// without creating a second row.
func AddFavorite(c *gin.Context, db *gorm.DB, firestoreClient *firestore.Client) {
	userId := c.MustGet("userId").(uint)

	var req dto.AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	// the vehicle must exist and belong to the caller
	doc, err := firestoreClient.Collection("Vehicles").Doc(req.VehicleID).Get(c)
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

	var existing model.Favorite
	result := db.Where("user_id = ? AND vehicle_id = ?", userId, req.VehicleID).First(&existing)
	if result.Error == nil {
		c.JSON(http.StatusOK, gin.H{
			"message":     "Vehicle already in favorites",
			"favorite_id": existing.FavoriteID,
		})
		return
	}
	if result.Error != gorm.ErrRecordNotFound {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	favorite := model.Favorite{
		UserID:    int(userId),
		VehicleID: req.VehicleID,
	}
	if err := db.Create(&favorite).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save favorite"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Vehicle saved to favorites",
		"favorite_id": favorite.FavoriteID,
	})
}

// ListFavorites returns the caller's favorites enriched with the vehicle
// summary from the document store. Favorites whose vehicle document has
// disappeared are skipped.
func ListFavorites(c *gin.Context, db *gorm.DB, firestoreClient *firestore.Client) {
	userId := c.MustGet("userId").(uint)

	var favorites []model.Favorite
	if err := db.Where("user_id = ?", userId).Order("create_at DESC").Find(&favorites).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load favorites"})
		return
	}

	results := make([]gin.H, 0, len(favorites))
	for _, favorite := range favorites {
		doc, err := firestoreClient.Collection("Vehicles").Doc(favorite.VehicleID).Get(c)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				continue
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load vehicle"})
			return
		}
		var vehicle model.Vehicle
		if err := doc.DataTo(&vehicle); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse vehicle data"})
			return
		}

		results = append(results, gin.H{
			"favorite_id": favorite.FavoriteID,
			"vehicle_id":  favorite.VehicleID,
			"brand":       vehicle.Brand,
			"model":       vehicle.Model,
			"year":        vehicle.Year,
			"score":       vehicle.Analysis.Score,
			"saved_at":    favorite.CreateAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{"favorites": results})
}

func RemoveFavorite(c *gin.Context, db *gorm.DB, firestoreClient *firestore.Client) {
	userId := c.MustGet("userId").(uint)
	vehicleID := c.Param("vehicleid")

	result := db.Where("user_id = ? AND vehicle_id = ?", userId, vehicleID).Delete(&model.Favorite{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove favorite"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Favorite not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Favorite removed successfully"})
}
