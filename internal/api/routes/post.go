package routes

import (
	"Quill/internal/api/handlers/post"
	"Quill/internal/api/middleware"
	"Quill/internal/core/posts"

	"github.com/go-chi/chi/v5"
)

// RegisterPostRoutes registers post endpoints on the router.
// Reads and likes updates are public; creation and deletion require an
// authenticated caller, and deletion is further gated on ownership
// inside the service.
func RegisterPostRoutes(r chi.Router, service posts.Service, authMiddleware *middleware.AuthMiddleware) {
	createHandler := post.NewCreateHandler(service)
	getHandler := post.NewGetHandler(service)
	updateHandler := post.NewUpdateHandler(service)
	deleteHandler := post.NewDeleteHandler(service)
	commentHandler := post.NewCommentHandler(service)
	statsHandler := post.NewStatsHandler(service)

	r.Route("/api/posts", func(r chi.Router) {
		r.Get("/", getHandler.HandleList)
		r.Get("/stats", statsHandler.HandleStats)
		r.Get("/{postID}", getHandler.HandleGet)

		// Likes update is intentionally open to any caller
		r.Put("/{postID}", updateHandler.HandleUpdateLikes)

		// Commenting is open to anyone who can resolve the post
		r.Post("/{postID}/comments", commentHandler.HandleAddComment)

		r.With(authMiddleware.RequireAuth).Post("/", createHandler.HandleCreate)
		r.With(authMiddleware.RequireAuth).Delete("/{postID}", deleteHandler.HandleDelete)
	})
}
