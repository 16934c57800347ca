package likes

import "context"

// Repository defines the interface for like persistence
type Repository interface {
	// Create inserts a like row. Returns ErrAlreadyLiked on a duplicate
	// (user, post) pair and ErrPostNotFound when the post doesn't exist.
	Create(ctx context.Context, like *PostLike) (*PostLike, error)

	// Delete removes the like for (userID, postID). Deleting a like that
	// doesn't exist is not an error.
	Delete(ctx context.Context, userID, postID string) error

	// ListForPost returns all likes on a post, oldest first.
	ListForPost(ctx context.Context, postID string) ([]PostLike, error)
}

// Service defines the interface for like business logic
type Service interface {
	// Like records that userID liked postID. Duplicate likes are rejected
	// with ErrAlreadyLiked, not silently accepted.
	Like(ctx context.Context, userID, postID string) (*PostLike, error)

	// Unlike removes userID's like on postID. Idempotent.
	Unlike(ctx context.Context, userID, postID string) error
}
