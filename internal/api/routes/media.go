package routes

import (
	"LinkUp/internal/api/handlers/mediaupload"
	"LinkUp/internal/api/middleware"
	"LinkUp/internal/core/media"

	"github.com/go-chi/chi/v5"
)

// RegisterMediaRoutes registers the standalone media upload endpoint
func RegisterMediaRoutes(r chi.Router, service media.Service, authMiddleware *middleware.AuthMiddleware) {
	uploadHandler := mediaupload.NewUploadHandler(service)

	r.With(authMiddleware.RequireAuth).Post("/media", uploadHandler.HandleUpload)
}
