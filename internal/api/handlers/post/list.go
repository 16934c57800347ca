package post

import (
	"net/http"
	"strconv"

	"LinkUp/internal/api/handlers"
	"LinkUp/internal/core/posts"
)

// ListPostsHandler serves the feed
type ListPostsHandler struct {
	service posts.Service
}

// NewListPostsHandler creates a new feed listing handler
func NewListPostsHandler(service posts.Service) *ListPostsHandler {
	return &ListPostsHandler{service: service}
}

// HandleList returns posts newest first with engagement counts
// GET /posts?limit=10&userId=...
func (h *ListPostsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			handlers.WriteFailure(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		limit = parsed
	}

	feed, err := h.service.ListPosts(r.Context(), limit, r.URL.Query().Get("userId"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteSuccess(w, handlers.M{"data": feed})
}
