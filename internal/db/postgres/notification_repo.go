package postgres

import (
	"LinkUp/internal/core/notifications"
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

type postgresNotificationRepo struct {
	db *sql.DB
}

// NewNotificationRepository creates a new PostgreSQL notification repository
func NewNotificationRepository(db *sql.DB) notifications.Repository {
	return &postgresNotificationRepo{db: db}
}

// Create inserts a notification row
func (r *postgresNotificationRepo) Create(ctx context.Context, n *notifications.Notification) (*notifications.Notification, error) {
	query := `
		INSERT INTO notifications (sender_id, receiver_id, title, data)
		VALUES ($1, $2, $3, $4)
		RETURNING id, read, created_at`

	err := r.db.QueryRowContext(ctx, query, n.SenderID, n.ReceiverID, n.Title, n.Data).
		Scan(&n.ID, &n.Read, &n.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" {
			return nil, fmt.Errorf("failed to create notification: unknown user: %w", err)
		}
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}

	return n, nil
}

// GetByID retrieves a notification by id
func (r *postgresNotificationRepo) GetByID(ctx context.Context, id string) (*notifications.Notification, error) {
	n := &notifications.Notification{}
	query := `
		SELECT id, sender_id, receiver_id, title, data, read, created_at
		FROM notifications
		WHERE id = $1`

	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&n.ID, &n.SenderID, &n.ReceiverID, &n.Title, &n.Data, &n.Read, &n.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, notifications.ErrNotificationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get notification: %w", err)
	}

	return n, nil
}

// ListForReceiver returns the receiver's notifications newest first with
// the sender summary joined
func (r *postgresNotificationRepo) ListForReceiver(ctx context.Context, receiverID string) ([]notifications.NotificationView, error) {
	query := `
		SELECT n.id, n.sender_id, n.receiver_id, n.title, n.data, n.read, n.created_at,
		       u.name, COALESCE(u.image, '')
		FROM notifications n
		JOIN users u ON u.id = n.sender_id
		WHERE n.receiver_id = $1
		ORDER BY n.created_at DESC, n.id DESC`

	rows, err := r.db.QueryContext(ctx, query, receiverID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	result := []notifications.NotificationView{}
	for rows.Next() {
		var view notifications.NotificationView
		err := rows.Scan(&view.ID, &view.SenderID, &view.ReceiverID, &view.Title,
			&view.Data, &view.Read, &view.CreatedAt,
			&view.Sender.Name, &view.Sender.Image)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		view.Sender.ID = view.SenderID
		result = append(result, view)
	}
	return result, rows.Err()
}

// MarkRead flips the read flag on one notification
func (r *postgresNotificationRepo) MarkRead(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE notifications SET read = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return notifications.ErrNotificationNotFound
	}
	return nil
}
