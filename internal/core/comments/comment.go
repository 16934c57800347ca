package comments

import (
	"time"

	"LinkUp/internal/core/users"
)

// Comment belongs to exactly one post.
type Comment struct {
	CreatedAt time.Time `json:"createdAt"`
	ID        string    `json:"id"`
	PostID    string    `json:"postId"`
	UserID    string    `json:"userId"`
	Text      string    `json:"text"`
}

// CommentView is a comment joined with its author summary, as served in
// post detail responses and pushed over the live comment channel.
type CommentView struct {
	Comment
	Author users.Summary `json:"user"`
}

// AddCommentRequest is the input for comment creation. UserID always comes
// from the verified session, never from the request body.
type AddCommentRequest struct {
	PostID string `json:"postId"`
	UserID string `json:"-"`
	Text   string `json:"text"`
}
