package posts

import "errors"

var (
	// ErrPostNotFound indicates no post matches the given id
	ErrPostNotFound = errors.New("post not found")

	// ErrNotPostOwner indicates the requester does not own the post
	ErrNotPostOwner = errors.New("not the post owner")

	// ErrBodyRequired indicates the post has neither body text nor media
	ErrBodyRequired = errors.New("post body is required")
)
