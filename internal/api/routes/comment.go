package routes

import (
	"LinkUp/internal/api/handlers/comment"
	"LinkUp/internal/api/middleware"
	commentsCore "LinkUp/internal/core/comments"
	"LinkUp/internal/realtime"

	"github.com/go-chi/chi/v5"
)

// RegisterCommentRoutes registers comment CRUD endpoints and the
// websocket subscription that streams new comments for a post
func RegisterCommentRoutes(r chi.Router, service commentsCore.Service, broker realtime.Broker, authMiddleware *middleware.AuthMiddleware) {
	createHandler := comment.NewCreateCommentHandler(service)
	deleteHandler := comment.NewDeleteCommentHandler(service)
	listHandler := comment.NewListCommentsHandler(service)
	subscribeHandler := comment.NewSubscribeHandler(broker)

	// GET /posts/{postId}/comments - all comments on a post, oldest first
	r.Get("/posts/{postId}/comments", listHandler.HandleList)

	// GET /posts/{postId}/comments/subscribe - websocket push of new comments
	r.Get("/posts/{postId}/comments/subscribe", subscribeHandler.HandleSubscribe)

	// POST /comments - add a comment; notifies the post owner
	r.With(authMiddleware.RequireAuth).Post("/comments", createHandler.HandleCreate)

	// DELETE /comments/{commentId} - comment author or post owner only
	r.With(authMiddleware.RequireAuth).Delete("/comments/{commentId}", deleteHandler.HandleDelete)
}
