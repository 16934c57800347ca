package post

import (
	"errors"
	"log"
	"net/http"

	"LinkUp/internal/api/handlers"
	"LinkUp/internal/core/media"
	"LinkUp/internal/core/posts"
)

var errInvalidFile = errors.New("file must be a storage key or {type, data} upload")

// handleServiceError converts post service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, posts.ErrPostNotFound):
		handlers.WriteFailure(w, http.StatusNotFound, "Post not found")
	case errors.Is(err, posts.ErrNotPostOwner):
		handlers.WriteFailure(w, http.StatusForbidden, "Only the post owner can do that")
	case errors.Is(err, posts.ErrBodyRequired):
		handlers.WriteFailure(w, http.StatusBadRequest, "Post body is required")
	case errors.Is(err, media.ErrUploadFailed):
		handlers.WriteFailure(w, http.StatusInternalServerError, "Could not upload media")
	case errors.Is(err, media.ErrInvalidKind), errors.Is(err, media.ErrEmptyFile), errors.Is(err, media.ErrFileTooLarge):
		handlers.WriteFailure(w, http.StatusBadRequest, err.Error())
	default:
		log.Printf("post handler error: %v", err)
		handlers.WriteFailure(w, http.StatusInternalServerError, "Could not process the post")
	}
}
