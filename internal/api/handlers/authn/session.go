package authn

import (
	"net/http"

	"LinkUp/internal/api/handlers"
	"LinkUp/internal/api/middleware"
	"LinkUp/internal/core/users"
)

// SessionHandler serves the current user for a valid token
type SessionHandler struct {
	service users.Service
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(service users.Service) *SessionHandler {
	return &SessionHandler{service: service}
}

// HandleGetSession returns the fresh user row behind the verified token.
// The token only asserts {userId, email}; profile fields come from the
// store on every call.
// GET /auth/session
func (h *SessionHandler) HandleGetSession(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == "" {
		handlers.WriteFailure(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	user, err := h.service.GetUser(r.Context(), userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteSuccess(w, handlers.M{"user": user})
}
