package routes

import (
	"LinkUp/internal/api/handlers/user"
	"LinkUp/internal/api/middleware"
	"LinkUp/internal/core/users"

	"github.com/go-chi/chi/v5"
)

// RegisterUserRoutes registers profile management endpoints
func RegisterUserRoutes(r chi.Router, service users.Service, authMiddleware *middleware.AuthMiddleware) {
	updateHandler := user.NewUpdateProfileHandler(service)

	r.With(authMiddleware.RequireAuth).Put("/users/me", updateHandler.HandleUpdateProfile)
}
