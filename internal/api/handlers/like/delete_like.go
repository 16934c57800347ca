package like

import (
	"encoding/json"
	"net/http"

	"LinkUp/internal/api/handlers"
	"LinkUp/internal/api/middleware"
	"LinkUp/internal/core/likes"
)

// DeleteLikeHandler handles like removal
type DeleteLikeHandler struct {
	service likes.Service
}

// NewDeleteLikeHandler creates a new unlike handler
func NewDeleteLikeHandler(service likes.Service) *DeleteLikeHandler {
	return &DeleteLikeHandler{service: service}
}

type deleteLikeInput struct {
	PostID string `json:"postId"`
}

// HandleDelete removes the authenticated user's like on a post.
// Removing a like that doesn't exist succeeds.
// DELETE /post-likes
//
// Request body: { "postId": "..." }
func (h *DeleteLikeHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == "" {
		handlers.WriteFailure(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 4*1024)

	var input deleteLikeInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		handlers.WriteFailure(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if input.PostID == "" {
		handlers.WriteFailure(w, http.StatusBadRequest, "postId is required")
		return
	}

	if err := h.service.Unlike(r.Context(), userID, input.PostID); err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteSuccess(w, handlers.M{"data": handlers.M{"postId": input.PostID}})
}
