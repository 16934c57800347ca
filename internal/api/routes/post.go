package routes

import (
	"LinkUp/internal/api/handlers/post"
	"LinkUp/internal/api/middleware"
	"LinkUp/internal/core/posts"

	"github.com/go-chi/chi/v5"
)

// RegisterPostRoutes registers feed and post CRUD endpoints
// Reads are public; writes require authentication
func RegisterPostRoutes(r chi.Router, service posts.Service, authMiddleware *middleware.AuthMiddleware) {
	createHandler := post.NewCreatePostHandler(service)
	listHandler := post.NewListPostsHandler(service)
	getHandler := post.NewGetPostHandler(service)
	deleteHandler := post.NewDeletePostHandler(service)

	// GET /posts?limit=&userId= - newest-first feed, optionally scoped to one author
	r.Get("/posts", listHandler.HandleList)

	// GET /posts/{postId} - single post with comments, likes, and author
	r.Get("/posts/{postId}", getHandler.HandleGet)

	// POST /posts - create a post, or replace it when the caller already owns the id
	r.With(authMiddleware.RequireAuth).Post("/posts", createHandler.HandleCreate)

	// DELETE /posts/{postId} - owner only
	r.With(authMiddleware.RequireAuth).Delete("/posts/{postId}", deleteHandler.HandleDelete)
}
