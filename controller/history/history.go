package history

import (
	"net/http"

	"drivesense/middleware"
	"drivesense/model"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func HistoryController(router *gin.Engine, db *gorm.DB, firestoreClient *firestore.Client) {
	routes := router.Group("/history", middleware.AccessTokenMiddleware())
	{
		routes.GET("", func(c *gin.Context) {
			ListSearchHistory(c, db)
		})
		routes.DELETE("", func(c *gin.Context) {
			ClearSearchHistory(c, db)
		})
	}
}

func ListSearchHistory(c *gin.Context, db *gorm.DB) {
	userId := c.MustGet("userId").(uint)

	var entries []model.SearchHistory
	if err := db.Where("user_id = ?", userId).Order("create_at DESC").Limit(50).Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load search history"})
		return
	}

	results := make([]gin.H, 0, len(entries))
	for _, entry := range entries {
		results = append(results, gin.H{
			"history_id":  entry.HistoryID,
			"brand":       entry.Brand,
			"model":       entry.Model,
			"year":        entry.Year,
			"searched_at": entry.CreateAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{"history": results})
}

func ClearSearchHistory(c *gin.Context, db *gorm.DB) {
	userId := c.MustGet("userId").(uint)

	if err := db.Where("user_id = ?", userId).Delete(&model.SearchHistory{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear search history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Search history cleared"})
}
