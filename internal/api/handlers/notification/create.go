package notification

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"LinkUp/internal/api/handlers"
	"LinkUp/internal/api/middleware"
	"LinkUp/internal/core/notifications"
)

// CreateNotificationHandler handles client-sent notifications (e.g., the
// "liked your post" notification the mobile client raises itself)
type CreateNotificationHandler struct {
	service notifications.Service
}

// NewCreateNotificationHandler creates a new notification handler
func NewCreateNotificationHandler(service notifications.Service) *CreateNotificationHandler {
	return &CreateNotificationHandler{service: service}
}

type createNotificationInput struct {
	Notification struct {
		ReceiverID string `json:"receiverId"`
		Title      string `json:"title"`
		Data       string `json:"data"`
	} `json:"notification"`
}

// HandleCreate persists a notification from the authenticated user.
// The sender is always the token's user; a senderId in the body is
// ignored.
// POST /notifications
func (h *CreateNotificationHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == "" {
		handlers.WriteFailure(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 16*1024)

	var input createNotificationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		handlers.WriteFailure(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.service.Create(r.Context(), notifications.CreateNotificationRequest{
		SenderID:   userID,
		ReceiverID: input.Notification.ReceiverID,
		Title:      input.Notification.Title,
		Data:       input.Notification.Data,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteSuccess(w, handlers.M{"data": created})
}

// handleServiceError converts notification service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, notifications.ErrSelfNotification):
		handlers.WriteFailure(w, http.StatusBadRequest, "Cannot notify yourself")
	case errors.Is(err, notifications.ErrMissingField):
		handlers.WriteFailure(w, http.StatusBadRequest, "receiverId and title are required")
	case errors.Is(err, notifications.ErrNotificationNotFound):
		handlers.WriteFailure(w, http.StatusNotFound, "Notification not found")
	case errors.Is(err, notifications.ErrNotReceiver):
		handlers.WriteFailure(w, http.StatusForbidden, "Only the receiver can do that")
	default:
		log.Printf("notification handler error: %v", err)
		handlers.WriteFailure(w, http.StatusInternalServerError, "Something went wrong")
	}
}
