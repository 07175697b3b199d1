package connection

import (
	"log"

	"drivesense/controller/auth"
	"drivesense/controller/checklist"
	"drivesense/controller/favorite"
	"drivesense/controller/history"
	"drivesense/controller/reminder"
	"drivesense/controller/user"
	"drivesense/controller/vehicle"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func StartServer() {
	router := gin.Default()

	DB, err := DBConnection()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	FB, err := FBConnection()
	if err != nil {
		log.Fatalf("Failed to initialize Firestore client: %v", err)
	}

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Api is running!"})
	})

	router.Use(cors.Default())

	auth.AuthController(router, DB, FB)

	vehicle.VehicleController(router, DB, FB)
	checklist.ChecklistController(router, DB, FB)

	favorite.FavoriteController(router, DB, FB)
	reminder.ReminderController(router, DB, FB)
	history.HistoryController(router, DB, FB)

	user.UserController(router, DB, FB)

	router.Run()
}
