package user

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"LinkUp/internal/api/handlers"
	"LinkUp/internal/api/middleware"
	"LinkUp/internal/core/users"
)

// UpdateProfileHandler handles profile mutations for the current user
type UpdateProfileHandler struct {
	service users.Service
}

// NewUpdateProfileHandler creates a new profile update handler
func NewUpdateProfileHandler(service users.Service) *UpdateProfileHandler {
	return &UpdateProfileHandler{service: service}
}

// HandleUpdateProfile applies the provided profile fields to the
// authenticated user. Omitted fields are left unchanged.
// PUT /users/me
func (h *UpdateProfileHandler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == "" {
		handlers.WriteFailure(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 16*1024)

	var req users.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteFailure(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.service.UpdateProfile(r.Context(), userID, req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteSuccess(w, handlers.M{"user": updated})
}

// handleServiceError converts user service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	var ve *users.ValidationError
	switch {
	case errors.As(err, &ve):
		handlers.WriteFailure(w, http.StatusBadRequest, ve.Message)
	case errors.Is(err, users.ErrUserNotFound):
		handlers.WriteFailure(w, http.StatusNotFound, "User not found")
	default:
		log.Printf("profile handler error: %v", err)
		handlers.WriteFailure(w, http.StatusInternalServerError, "Could not update the profile")
	}
}
