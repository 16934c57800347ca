package posts

import (
	"context"

	"LinkUp/internal/core/media"
)

// Repository defines the interface for post persistence
type Repository interface {
	// Create inserts a new post
	Create(ctx context.Context, post *Post) (*Post, error)

	// Replace wholly replaces the post with the given id
	Replace(ctx context.Context, post *Post) (*Post, error)

	// OwnerOf returns the owning user id, or ErrPostNotFound
	OwnerOf(ctx context.Context, postID string) (string, error)

	// List returns hydrated posts newest first, at most limit rows.
	// A non-empty userID filters to that owner's posts.
	List(ctx context.Context, limit int, userID string) ([]PostView, error)

	// GetDetail returns one post with author, like set and full comments
	GetDetail(ctx context.Context, postID string) (*PostDetail, error)

	// Delete hard-deletes a post; likes, comments and notification
	// references cascade via the schema's FK rules
	Delete(ctx context.Context, postID string) error
}

// Uploader stores post attachments. Implemented by the media service.
type Uploader interface {
	UploadPostFile(ctx context.Context, kind media.Kind, data []byte) (string, error)
}

// Service defines the interface for feed business logic
type Service interface {
	// CreateOrUpdatePost stores any inline media first, then creates the
	// post (empty ID) or replaces an existing one the requester owns.
	// A failed media upload aborts the write: no orphan post is created.
	CreateOrUpdatePost(ctx context.Context, req CreatePostRequest) (*Post, error)

	// ListPosts returns the feed, newest first. limit is clamped to
	// [1, 100]; non-positive values fall back to the default page size.
	ListPosts(ctx context.Context, limit int, userID string) ([]PostView, error)

	// GetPostDetail returns one post with its full like and comment sets
	GetPostDetail(ctx context.Context, postID string) (*PostDetail, error)

	// DeletePost removes a post the requester owns
	DeletePost(ctx context.Context, postID, requesterID string) error
}
