package like

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"LinkUp/internal/api/handlers"
	"LinkUp/internal/api/middleware"
	"LinkUp/internal/core/likes"
)

// CreateLikeHandler handles like creation
type CreateLikeHandler struct {
	service likes.Service
}

// NewCreateLikeHandler creates a new like handler
func NewCreateLikeHandler(service likes.Service) *CreateLikeHandler {
	return &CreateLikeHandler{service: service}
}

type createLikeInput struct {
	PostLike struct {
		PostID string `json:"postId"`
	} `json:"postLike"`
}

// HandleCreate records that the authenticated user liked a post.
// The liking user is always the token's user; a userId in the body is
// ignored.
// POST /post-likes
//
// Request body: { "postLike": { "postId": "..." } }
func (h *CreateLikeHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == "" {
		handlers.WriteFailure(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 4*1024)

	var input createLikeInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		handlers.WriteFailure(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if input.PostLike.PostID == "" {
		handlers.WriteFailure(w, http.StatusBadRequest, "postId is required")
		return
	}

	created, err := h.service.Like(r.Context(), userID, input.PostLike.PostID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteSuccess(w, handlers.M{"data": created})
}

// handleServiceError converts like service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, likes.ErrAlreadyLiked):
		handlers.WriteFailure(w, http.StatusConflict, "Post already liked")
	case errors.Is(err, likes.ErrPostNotFound):
		handlers.WriteFailure(w, http.StatusNotFound, "Post not found")
	default:
		log.Printf("like handler error: %v", err)
		handlers.WriteFailure(w, http.StatusInternalServerError, "Could not process the like")
	}
}
