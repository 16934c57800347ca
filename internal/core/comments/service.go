package comments

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"
)

// notifyTimeout bounds the fire-and-forget notification side effect so a
// stuck repository can't leak goroutines
const notifyTimeout = 10 * time.Second

type commentService struct {
	repo       Repository
	postOwners PostOwnerResolver
	notifier   Notifier
	publisher  Publisher
}

// NewCommentService creates a new comment service.
// notifier and publisher can be nil (e.g., in tests or minimal setups);
// the corresponding side effect is skipped.
func NewCommentService(repo Repository, postOwners PostOwnerResolver, notifier Notifier, publisher Publisher) Service {
	return &commentService{
		repo:       repo,
		postOwners: postOwners,
		notifier:   notifier,
		publisher:  publisher,
	}
}

// AddComment persists the comment, then fires the notification and live-push
// side effects. The comment succeeds even when either side effect fails.
func (s *commentService) AddComment(ctx context.Context, req AddCommentRequest) (*CommentView, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, ErrTextEmpty
	}
	if strings.TrimSpace(req.PostID) == "" {
		return nil, ErrPostNotFound
	}

	ownerID, err := s.postOwners.OwnerOf(ctx, req.PostID)
	if err != nil {
		return nil, ErrPostNotFound
	}

	view, err := s.repo.Create(ctx, &Comment{
		PostID: req.PostID,
		UserID: req.UserID,
		Text:   strings.TrimSpace(req.Text),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	// No self-notification: commenting on your own post stays silent
	if s.notifier != nil && ownerID != req.UserID {
		go func(senderID, receiverID, postID, commentID string) {
			nctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
			defer cancel()
			if err := s.notifier.CommentCreated(nctx, senderID, receiverID, postID, commentID); err != nil {
				log.Printf("comment notification failed: post=%s comment=%s err=%v", postID, commentID, err)
			}
		}(req.UserID, ownerID, req.PostID, view.ID)
	}

	s.publish(ctx, view)

	return view, nil
}

func (s *commentService) DeleteComment(ctx context.Context, commentID, requesterID string) error {
	comment, err := s.repo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}

	if comment.UserID != requesterID {
		ownerID, err := s.postOwners.OwnerOf(ctx, comment.PostID)
		if err != nil || ownerID != requesterID {
			return ErrNotAuthorized
		}
	}

	return s.repo.Delete(ctx, commentID)
}

func (s *commentService) ListForPost(ctx context.Context, postID string) ([]CommentView, error) {
	return s.repo.ListForPost(ctx, postID)
}

// publish pushes the new comment to live subscribers of its post.
// Failures are logged, never surfaced: push delivery is best effort.
func (s *commentService) publish(ctx context.Context, view *CommentView) {
	if s.publisher == nil {
		return
	}

	payload, err := json.Marshal(view)
	if err != nil {
		log.Printf("failed to encode comment for push: comment=%s err=%v", view.ID, err)
		return
	}
	if err := s.publisher.Publish(ctx, view.PostID, payload); err != nil {
		log.Printf("failed to publish comment: post=%s comment=%s err=%v", view.PostID, view.ID, err)
	}
}
