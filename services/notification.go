package services

import (
	"context"
	"fmt"
	"os"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/joho/godotenv"
	"google.golang.org/api/option"
)

func GetFCMTokenData(firestoreClient *firestore.Client, email string) (string, error) {
	ctx := context.Background()
	doc, err := firestoreClient.Collection("usersLogin").Doc(email).Get(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get document: %v", err)
	}

	if !doc.Exists() {
		return "", fmt.Errorf("user login data not found")
	}

	data := doc.Data()
	fcmTokenInterface, exists := data["FCMToken"]
	if !exists {
		return "", fmt.Errorf("FCM token not found for user")
	}

	fcmToken, ok := fcmTokenInterface.(string)
	if !ok || fcmToken == "" {
		return "", fmt.Errorf("invalid or empty FCM token")
	}

	return fcmToken, nil
}

func GetFirebaseApp() (*firebase.App, error) {
	// Load .env only when it was not loaded elsewhere
	err := godotenv.Load()
	if err != nil {
		fmt.Println("Warning: No .env file found or failed to load")
	}

	serviceAccountKeyPath := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
	if serviceAccountKeyPath == "" {
		return nil, fmt.Errorf("firebase credentials not configured")
	}

	return InitializeFirebaseApp(serviceAccountKeyPath)
}

func InitializeFirebaseApp(serviceAccountKeyPath string) (*firebase.App, error) {
	ctx := context.Background()
	opt := option.WithCredentialsFile(serviceAccountKeyPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("error initializing app: %v", err)
	}
	return app, nil
}

// SendReminderNotification pushes one maintenance reminder to a device.
func SendReminderNotification(app *firebase.App, token, title, body string, data map[string]string) error {
	ctx := context.Background()

	client, err := app.Messaging(ctx)
	if err != nil {
		return fmt.Errorf("error getting Messaging client: %v", err)
	}

	message := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := client.Send(ctx, message); err != nil {
		return fmt.Errorf("error sending notification: %v", err)
	}
	return nil
}
