package scheduler

import (
	"errors"
	"log"
	"strconv"
	"time"

	"drivesense/model"
	"drivesense/services"

	"cloud.google.com/go/firestore"
	"gorm.io/gorm"
)

// SendReminderJob pushes a notification for every reminder that comes due
// within the next 24 hours and has not been notified yet. Each reminder is
// marked after a successful send so it is only pushed once.
func SendReminderJob(db *gorm.DB, firestoreClient *firestore.Client) {
	cutoff := time.Now().Add(24 * time.Hour)

	var due []model.Reminder
	if err := db.Where("completed = ? AND notified_at IS NULL AND due_date <= ?", false, cutoff).
		Find(&due).Error; err != nil {
		log.Printf("reminder job: failed to load due reminders: %v", err)
		return
	}
	if len(due) == 0 {
		return
	}

	app, err := services.GetFirebaseApp()
	if err != nil {
		log.Printf("reminder job: failed to initialize Firebase app: %v", err)
		return
	}

	for _, reminder := range due {
		var profile model.UserProfile
		err := db.Where("user_id = ?", reminder.UserID).First(&profile).Error
		if err == nil && !profile.NotifyByPush {
			continue
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("reminder job: failed to load profile for user %d: %v", reminder.UserID, err)
			continue
		}

		user, err := services.GetUserdata(db, uint(reminder.UserID))
		if err != nil {
			log.Printf("reminder job: failed to load user %d: %v", reminder.UserID, err)
			continue
		}

		token, err := services.GetFCMTokenData(firestoreClient, user.Email)
		if err != nil {
			log.Printf("reminder job: no device token for %s: %v", user.Email, err)
			continue
		}

		data := map[string]string{
			"reminder_id": strconv.Itoa(reminder.ReminderID),
			"vehicle_id":  reminder.VehicleID,
		}
		if err := services.SendReminderNotification(app, token, reminder.Title, reminder.Description, data); err != nil {
			log.Printf("reminder job: failed to notify user %d: %v", reminder.UserID, err)
			continue
		}

		if err := db.Model(&reminder).Update("notified_at", time.Now()).Error; err != nil {
			log.Printf("reminder job: failed to mark reminder %d: %v", reminder.ReminderID, err)
		}
	}
}
