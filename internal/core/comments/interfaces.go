package comments

import "context"

// Repository defines the interface for comment persistence
type Repository interface {
	// Create inserts a comment and returns it joined with its author
	// summary. Returns ErrPostNotFound when the post doesn't exist.
	Create(ctx context.Context, comment *Comment) (*CommentView, error)

	// GetByID retrieves a comment by id
	GetByID(ctx context.Context, id string) (*Comment, error)

	// Delete hard-deletes a comment by id
	Delete(ctx context.Context, id string) error

	// ListForPost returns a post's comments newest first, each joined with
	// its author summary
	ListForPost(ctx context.Context, postID string) ([]CommentView, error)
}

// PostOwnerResolver answers who owns a post. Implemented by the post
// repository; declared here to keep comments from importing posts.
type PostOwnerResolver interface {
	OwnerOf(ctx context.Context, postID string) (string, error)
}

// Notifier delivers the "someone commented on your post" notification.
// Implemented by the notifications service.
type Notifier interface {
	CommentCreated(ctx context.Context, senderID, receiverID, postID, commentID string) error
}

// Publisher pushes newly persisted comments to live subscribers.
// Implemented by the realtime broker.
type Publisher interface {
	Publish(ctx context.Context, topic string, payload []byte) error
}

// Service defines the interface for comment business logic
type Service interface {
	// AddComment persists a comment. When the commenter is not the post
	// owner a notification fires as a best-effort side effect; the new
	// comment is also published to live subscribers of its post. Neither
	// side effect can fail the comment itself.
	AddComment(ctx context.Context, req AddCommentRequest) (*CommentView, error)

	// DeleteComment removes a comment. Allowed for the comment author and
	// the post owner; anyone else gets ErrNotAuthorized.
	DeleteComment(ctx context.Context, commentID, requesterID string) error

	// ListForPost returns a post's comments newest first.
	ListForPost(ctx context.Context, postID string) ([]CommentView, error)
}
