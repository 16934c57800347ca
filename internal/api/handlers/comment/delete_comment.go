package comment

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"LinkUp/internal/api/handlers"
	"LinkUp/internal/api/middleware"
	"LinkUp/internal/core/comments"
)

// DeleteCommentHandler handles comment deletion
type DeleteCommentHandler struct {
	service comments.Service
}

// NewDeleteCommentHandler creates a new delete comment handler
func NewDeleteCommentHandler(service comments.Service) *DeleteCommentHandler {
	return &DeleteCommentHandler{service: service}
}

// HandleDelete removes a comment. The comment author and the post owner
// are the only identities allowed to.
// DELETE /comments/{commentId}
func (h *DeleteCommentHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == "" {
		handlers.WriteFailure(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	commentID := chi.URLParam(r, "commentId")
	if err := h.service.DeleteComment(r.Context(), commentID, userID); err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteSuccess(w, handlers.M{"data": handlers.M{"commentId": commentID}})
}
