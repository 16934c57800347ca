package comment

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"LinkUp/internal/api/handlers"
	"LinkUp/internal/core/comments"
)

// ListCommentsHandler serves a post's comments on their own, outside the
// full post detail view
type ListCommentsHandler struct {
	service comments.Service
}

// NewListCommentsHandler creates a new comment listing handler
func NewListCommentsHandler(service comments.Service) *ListCommentsHandler {
	return &ListCommentsHandler{service: service}
}

// HandleList returns a post's comments newest first
// GET /posts/{postId}/comments
func (h *ListCommentsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "postId")

	list, err := h.service.ListForPost(r.Context(), postID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteSuccess(w, handlers.M{"data": list})
}
