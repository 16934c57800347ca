package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

type notificationService struct {
	repo Repository
}

// NewNotificationService creates a new notification service
func NewNotificationService(repo Repository) Service {
	return &notificationService{repo: repo}
}

func (s *notificationService) Create(ctx context.Context, req CreateNotificationRequest) (*Notification, error) {
	if strings.TrimSpace(req.SenderID) == "" || strings.TrimSpace(req.ReceiverID) == "" || strings.TrimSpace(req.Title) == "" {
		return nil, ErrMissingField
	}
	if req.SenderID == req.ReceiverID {
		return nil, ErrSelfNotification
	}

	return s.repo.Create(ctx, &Notification{
		SenderID:   req.SenderID,
		ReceiverID: req.ReceiverID,
		Title:      req.Title,
		Data:       req.Data,
	})
}

func (s *notificationService) ListForUser(ctx context.Context, receiverID string) ([]NotificationView, error) {
	return s.repo.ListForReceiver(ctx, receiverID)
}

func (s *notificationService) MarkRead(ctx context.Context, id, requesterID string) error {
	n, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if n.ReceiverID != requesterID {
		return ErrNotReceiver
	}
	return s.repo.MarkRead(ctx, id)
}

// CommentNotifier adapts the notification service to the comments
// package's Notifier interface.
type CommentNotifier struct {
	service Service
}

// NewCommentNotifier creates the comment-created notification adapter
func NewCommentNotifier(service Service) *CommentNotifier {
	return &CommentNotifier{service: service}
}

// CommentCreated records a "commented on your post" notification.
// The self-notification guard in Create is redundant here (the comments
// service already skips the post owner) but keeps the invariant enforced
// in one place.
func (c *CommentNotifier) CommentCreated(ctx context.Context, senderID, receiverID, postID, commentID string) error {
	data, err := json.Marshal(map[string]string{
		"postId":    postID,
		"commentId": commentID,
	})
	if err != nil {
		return fmt.Errorf("failed to encode notification data: %w", err)
	}

	_, err = c.service.Create(ctx, CreateNotificationRequest{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Title:      "commented on your post",
		Data:       string(data),
	})
	return err
}
