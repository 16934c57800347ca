package routes

import (
	"LinkUp/internal/api/handlers/authn"
	"LinkUp/internal/api/middleware"
	"LinkUp/internal/core/users"

	"github.com/go-chi/chi/v5"
)

// RegisterAuthRoutes registers signup, login, and session endpoints
func RegisterAuthRoutes(r chi.Router, service users.Service, authMiddleware *middleware.AuthMiddleware) {
	signUpHandler := authn.NewSignUpHandler(service)
	loginHandler := authn.NewLoginHandler(service)
	sessionHandler := authn.NewSessionHandler(service)

	// Account creation and login are the only anonymous write endpoints
	r.Post("/signup", signUpHandler.HandleSignUp)
	r.Post("/login", loginHandler.HandleLogin)

	// Returns the profile of the authenticated user
	r.With(authMiddleware.RequireAuth).Get("/auth/session", sessionHandler.HandleGetSession)
}
