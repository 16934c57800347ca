package notification

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"LinkUp/internal/api/handlers"
	"LinkUp/internal/api/middleware"
	"LinkUp/internal/core/notifications"
)

// MarkReadHandler flips a notification's read flag
type MarkReadHandler struct {
	service notifications.Service
}

// NewMarkReadHandler creates a new mark-read handler
func NewMarkReadHandler(service notifications.Service) *MarkReadHandler {
	return &MarkReadHandler{service: service}
}

// HandleMarkRead marks one of the requester's notifications as read
// PATCH /notifications/{notificationId}/read
func (h *MarkReadHandler) HandleMarkRead(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == "" {
		handlers.WriteFailure(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	notificationID := chi.URLParam(r, "notificationId")
	if err := h.service.MarkRead(r.Context(), notificationID, userID); err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteSuccess(w, handlers.M{"data": handlers.M{"notificationId": notificationID}})
}
