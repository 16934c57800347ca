package posts

import (
	"time"

	"LinkUp/internal/core/comments"
	"LinkUp/internal/core/likes"
	"LinkUp/internal/core/media"
	"LinkUp/internal/core/users"
)

// Post is a feed entry owned exclusively by its creator.
// File holds the media storage key (postImages/... or postVideos/...),
// empty for text-only posts.
type Post struct {
	CreatedAt time.Time `json:"createdAt"`
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Body      string    `json:"body"`
	File      string    `json:"file,omitempty"`
}

// PostView is a post hydrated with its author summary, like set and
// comment count, as served in feed listings.
type PostView struct {
	Post
	Author       users.Summary    `json:"user"`
	Likes        []likes.PostLike `json:"postLikes"`
	CommentCount int              `json:"commentCount"`
}

// PostDetail is the full single-post view: the feed view plus all
// comments, newest first.
type PostDetail struct {
	PostView
	Comments []comments.CommentView `json:"comments"`
}

// CreatePostRequest is the input for the create-or-update endpoint.
// An empty ID creates a new post; a non-empty ID replaces an existing
// post the requester owns. UserID always comes from the verified session.
// Upload, when set, is stored first and its key becomes File.
type CreatePostRequest struct {
	ID     string        `json:"id,omitempty"`
	UserID string        `json:"-"`
	Body   string        `json:"body"`
	File   string        `json:"file,omitempty"`
	Upload *media.Upload `json:"-"`
}
