package comment

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"LinkUp/internal/api/handlers"
	"LinkUp/internal/api/middleware"
	"LinkUp/internal/core/comments"
)

// CreateCommentHandler handles comment creation
type CreateCommentHandler struct {
	service comments.Service
}

// NewCreateCommentHandler creates a new comment handler
func NewCreateCommentHandler(service comments.Service) *CreateCommentHandler {
	return &CreateCommentHandler{service: service}
}

type createCommentInput struct {
	Comment struct {
		PostID string `json:"postId"`
		Text   string `json:"text"`
	} `json:"comment"`
}

// HandleCreate persists a comment by the authenticated user
// POST /comments
//
// Request body: { "comment": { "postId": "...", "text": "..." } }
func (h *CreateCommentHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == "" {
		handlers.WriteFailure(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 100*1024)

	var input createCommentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		handlers.WriteFailure(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if input.Comment.PostID == "" {
		handlers.WriteFailure(w, http.StatusBadRequest, "postId is required")
		return
	}
	if input.Comment.Text == "" {
		handlers.WriteFailure(w, http.StatusBadRequest, "text is required")
		return
	}

	created, err := h.service.AddComment(r.Context(), comments.AddCommentRequest{
		PostID: input.Comment.PostID,
		UserID: userID,
		Text:   input.Comment.Text,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteSuccess(w, handlers.M{"data": created})
}

// handleServiceError converts comment service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, comments.ErrCommentNotFound):
		handlers.WriteFailure(w, http.StatusNotFound, "Comment not found")
	case errors.Is(err, comments.ErrPostNotFound):
		handlers.WriteFailure(w, http.StatusNotFound, "Post not found")
	case errors.Is(err, comments.ErrTextEmpty):
		handlers.WriteFailure(w, http.StatusBadRequest, "Comment text is required")
	case errors.Is(err, comments.ErrNotAuthorized):
		handlers.WriteFailure(w, http.StatusForbidden, "Only the comment author or post owner can do that")
	default:
		log.Printf("comment handler error: %v", err)
		handlers.WriteFailure(w, http.StatusInternalServerError, "Could not process the comment")
	}
}
