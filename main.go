package main

import (
	"drivesense/connection"
	"drivesense/scheduler"

	"github.com/gin-gonic/gin"
)

func main() {
	gin.SetMode(gin.ReleaseMode)
	go scheduler.StartScheduler()
	connection.StartServer()
}
