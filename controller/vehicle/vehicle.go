package vehicle

import (
	"drivesense/middleware"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func VehicleController(router *gin.Engine, db *gorm.DB, firestoreClient *firestore.Client) {
	routes := router.Group("/vehicle", middleware.AccessTokenMiddleware())
	{
		routes.POST("/analyze", func(c *gin.Context) {
			AnalyzeVehicle(c, db, firestoreClient)
		})
		routes.GET("", func(c *gin.Context) {
			RecentVehicles(c, db, firestoreClient)
		})
		routes.GET("/:vehicleid", func(c *gin.Context) {
			GetVehicle(c, db, firestoreClient)
		})
		routes.DELETE("/:vehicleid", func(c *gin.Context) {
			DeleteVehicle(c, db, firestoreClient)
		})
	}
}
