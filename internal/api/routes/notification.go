package routes

import (
	"LinkUp/internal/api/handlers/notification"
	"LinkUp/internal/api/middleware"
	"LinkUp/internal/core/notifications"

	"github.com/go-chi/chi/v5"
)

// RegisterNotificationRoutes registers notification endpoints; all require
// authentication since notifications are scoped to the calling user
func RegisterNotificationRoutes(r chi.Router, service notifications.Service, authMiddleware *middleware.AuthMiddleware) {
	createHandler := notification.NewCreateNotificationHandler(service)
	listHandler := notification.NewListNotificationsHandler(service)
	markReadHandler := notification.NewMarkReadHandler(service)

	r.With(authMiddleware.RequireAuth).Post("/notifications", createHandler.HandleCreate)
	r.With(authMiddleware.RequireAuth).Get("/notifications", listHandler.HandleList)
	r.With(authMiddleware.RequireAuth).Patch("/notifications/{notificationId}/read", markReadHandler.HandleMarkRead)
}
