package routes

import (
	"LinkUp/internal/api/handlers/like"
	"LinkUp/internal/api/middleware"
	"LinkUp/internal/core/likes"

	"github.com/go-chi/chi/v5"
)

// RegisterLikeRoutes registers post like endpoints; both require authentication
func RegisterLikeRoutes(r chi.Router, service likes.Service, authMiddleware *middleware.AuthMiddleware) {
	createHandler := like.NewCreateLikeHandler(service)
	deleteHandler := like.NewDeleteLikeHandler(service)

	r.With(authMiddleware.RequireAuth).Post("/post-likes", createHandler.HandleCreate)
	r.With(authMiddleware.RequireAuth).Delete("/post-likes", deleteHandler.HandleDelete)
}
