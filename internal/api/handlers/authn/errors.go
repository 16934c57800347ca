package authn

import (
	"errors"
	"log"
	"net/http"

	"LinkUp/internal/api/handlers"
	"LinkUp/internal/core/users"
)

// handleServiceError converts user service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	var ve *users.ValidationError
	switch {
	case errors.As(err, &ve):
		handlers.WriteFailure(w, http.StatusBadRequest, ve.Message)
	case errors.Is(err, users.ErrEmailTaken):
		handlers.WriteFailure(w, http.StatusConflict, "Email is already registered")
	case errors.Is(err, users.ErrInvalidCredentials):
		handlers.WriteFailure(w, http.StatusBadRequest, "Invalid email or password")
	case errors.Is(err, users.ErrUserNotFound):
		handlers.WriteFailure(w, http.StatusNotFound, "User not found")
	default:
		log.Printf("auth handler error: %v", err)
		handlers.WriteFailure(w, http.StatusInternalServerError, "Server Error")
	}
}
