package checklist

import (
	"drivesense/middleware"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func ChecklistController(router *gin.Engine, db *gorm.DB, firestoreClient *firestore.Client) {
	routes := router.Group("/checklist", middleware.AccessTokenMiddleware())
	{
		routes.GET("/vehicle/:vehicleid", func(c *gin.Context) {
			GetChecklists(c, db, firestoreClient)
		})
		routes.PUT("/:checklistid/toggle", func(c *gin.Context) {
			ToggleChecklistItem(c, db, firestoreClient)
		})
	}
}
