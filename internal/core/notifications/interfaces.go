package notifications

import "context"

// Repository defines the interface for notification persistence
type Repository interface {
	Create(ctx context.Context, n *Notification) (*Notification, error)
	GetByID(ctx context.Context, id string) (*Notification, error)

	// ListForReceiver returns the receiver's notifications newest first,
	// each joined with the sender summary
	ListForReceiver(ctx context.Context, receiverID string) ([]NotificationView, error)

	// MarkRead flips the read flag on one notification
	MarkRead(ctx context.Context, id string) error
}

// Service defines the interface for notification business logic
type Service interface {
	// Create persists a notification. Persistence failures surface to the
	// caller untranslated; they are never masked as success.
	Create(ctx context.Context, req CreateNotificationRequest) (*Notification, error)

	// ListForUser returns receiverID's notifications newest first
	ListForUser(ctx context.Context, receiverID string) ([]NotificationView, error)

	// MarkRead marks a notification read; only its receiver may
	MarkRead(ctx context.Context, id, requesterID string) error
}
