package comments

import "errors"

var (
	// ErrCommentNotFound indicates the requested comment doesn't exist
	ErrCommentNotFound = errors.New("comment not found")

	// ErrPostNotFound indicates the post being commented on doesn't exist
	ErrPostNotFound = errors.New("post not found")

	// ErrTextEmpty indicates the comment has no text
	ErrTextEmpty = errors.New("comment text is required")

	// ErrNotAuthorized indicates the requester may not delete this comment;
	// only the comment author and the post owner may
	ErrNotAuthorized = errors.New("not authorized to delete this comment")
)
