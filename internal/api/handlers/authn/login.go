package authn

import (
	"encoding/json"
	"net/http"

	"LinkUp/internal/api/handlers"
	"LinkUp/internal/core/users"
)

// LoginHandler handles credential verification and token issuance
type LoginHandler struct {
	service users.Service
}

// NewLoginHandler creates a new login handler
func NewLoginHandler(service users.Service) *LoginHandler {
	return &LoginHandler{service: service}
}

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleLogin verifies credentials and issues a session token
// POST /login
//
// Request body: { "email": "...", "password": "..." }
// Response: { "success": true, "token": "...", "user": {...} }
func (h *LoginHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 4*1024)

	var input loginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		handlers.WriteFailure(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if input.Email == "" {
		handlers.WriteFailure(w, http.StatusBadRequest, "email is required")
		return
	}
	if input.Password == "" {
		handlers.WriteFailure(w, http.StatusBadRequest, "password is required")
		return
	}

	result, err := h.service.Login(r.Context(), input.Email, input.Password)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteSuccess(w, handlers.M{
		"msg":   "Login successful",
		"token": result.Token,
		"user":  result.User,
	})
}
