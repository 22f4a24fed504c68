package contracts

import "lunysse-service/internal/app/models"

// Notifier is the fire-and-forget channel for user-facing messages.
type Notifier interface {
	Notify(message string, severity models.Severity)
	Active() []models.Notification
	Dismiss(notificationID string) bool
}

type NotificationHub interface {
	For(psychologistID string) Notifier
	Close()
}
