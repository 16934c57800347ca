package notifications

import (
	"time"

	"LinkUp/internal/core/users"
)

// Notification is created as a side effect of engagement actions.
// Data is an opaque JSON payload referencing the post/comment involved,
// parsed only by the client for navigation.
type Notification struct {
	CreatedAt  time.Time `json:"createdAt"`
	ID         string    `json:"id"`
	SenderID   string    `json:"senderId"`
	ReceiverID string    `json:"receiverId"`
	Title      string    `json:"title"`
	Data       string    `json:"data"`
	Read       bool      `json:"read"`
}

// NotificationView is a notification joined with its sender summary.
type NotificationView struct {
	Notification
	Sender users.Summary `json:"sender"`
}

// CreateNotificationRequest is the input for notification creation.
type CreateNotificationRequest struct {
	SenderID   string `json:"senderId"`
	ReceiverID string `json:"receiverId"`
	Title      string `json:"title"`
	Data       string `json:"data"`
}
