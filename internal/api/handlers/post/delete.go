package post

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"LinkUp/internal/api/handlers"
	"LinkUp/internal/api/middleware"
	"LinkUp/internal/core/posts"
)

// DeletePostHandler handles post deletion
type DeletePostHandler struct {
	service posts.Service
}

// NewDeletePostHandler creates a new delete post handler
func NewDeletePostHandler(service posts.Service) *DeletePostHandler {
	return &DeletePostHandler{service: service}
}

// HandleDelete removes a post the requester owns
// DELETE /posts/{postId}
func (h *DeletePostHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == "" {
		handlers.WriteFailure(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	postID := chi.URLParam(r, "postId")
	if err := h.service.DeletePost(r.Context(), postID, userID); err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteSuccess(w, handlers.M{"data": handlers.M{"postId": postID}})
}
