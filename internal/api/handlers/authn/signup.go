package authn

import (
	"encoding/json"
	"net/http"

	"LinkUp/internal/api/handlers"
	"LinkUp/internal/core/users"
)

// SignUpHandler handles account creation
type SignUpHandler struct {
	service users.Service
}

// NewSignUpHandler creates a new signup handler
func NewSignUpHandler(service users.Service) *SignUpHandler {
	return &SignUpHandler{service: service}
}

// HandleSignUp creates an account
// POST /signup
//
// Request body: { "username": "...", "email": "...", "password": "..." }
func (h *SignUpHandler) HandleSignUp(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 4*1024)

	var req users.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteFailure(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if _, err := h.service.SignUp(r.Context(), req); err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteSuccess(w, handlers.M{"msg": "User created successfully"})
}
