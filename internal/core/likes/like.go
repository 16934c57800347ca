package likes

import "time"

// PostLike is a boolean "liked" edge between a user and a post.
// The repository enforces at most one row per (user, post) pair.
type PostLike struct {
	CreatedAt time.Time `json:"createdAt"`
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	PostID    string    `json:"postId"`
}
