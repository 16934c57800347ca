package likes

import "errors"

var (
	// ErrAlreadyLiked indicates a like already exists for this (user, post) pair
	ErrAlreadyLiked = errors.New("post already liked")

	// ErrPostNotFound indicates the post being liked doesn't exist
	ErrPostNotFound = errors.New("post not found")
)
