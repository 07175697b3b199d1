// scheduler/scheduler.go
package scheduler

import (
	"log"

	"drivesense/connection"

	"github.com/robfig/cron/v3"
)

func StartScheduler() {
	c := cron.New(cron.WithSeconds())

	DB, err := connection.DBConnection()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	FB, err := connection.FBConnection()
	if err != nil {
		log.Fatalf("Failed to initialize Firestore client: %v", err)
	}

	// every minute
	_, err = c.AddFunc("0 * * * * *", func() {
		log.Println("Running scheduled reminder job...")
		SendReminderJob(DB, FB)
	})

	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}

	c.Start()
	log.Println("Scheduler started")

	// Block forever
	select {}
}
