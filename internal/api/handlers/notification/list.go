package notification

import (
	"net/http"

	"LinkUp/internal/api/handlers"
	"LinkUp/internal/api/middleware"
	"LinkUp/internal/core/notifications"
)

// ListNotificationsHandler serves the authenticated user's notifications
type ListNotificationsHandler struct {
	service notifications.Service
}

// NewListNotificationsHandler creates a new notification listing handler
func NewListNotificationsHandler(service notifications.Service) *ListNotificationsHandler {
	return &ListNotificationsHandler{service: service}
}

// HandleList returns the requester's notifications newest first.
// The receiver is always the token's user: one user cannot read
// another's notifications.
// GET /notifications
func (h *ListNotificationsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == "" {
		handlers.WriteFailure(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	list, err := h.service.ListForUser(r.Context(), userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteSuccess(w, handlers.M{"data": list})
}
