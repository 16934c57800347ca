package post

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"LinkUp/internal/api/handlers"
	"LinkUp/internal/core/posts"
)

// GetPostHandler serves the single-post detail view
type GetPostHandler struct {
	service posts.Service
}

// NewGetPostHandler creates a new post detail handler
func NewGetPostHandler(service posts.Service) *GetPostHandler {
	return &GetPostHandler{service: service}
}

// HandleGet returns one post with its full like set and comments
// GET /posts/{postId}
func (h *GetPostHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "postId")

	detail, err := h.service.GetPostDetail(r.Context(), postID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteSuccess(w, handlers.M{"data": detail})
}
