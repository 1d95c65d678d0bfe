package routes

import (
	authhandler "Quill/internal/api/handlers/auth"
	"Quill/internal/api/middleware"
	"Quill/internal/core/auth"

	"github.com/go-chi/chi/v5"
)

// RegisterAuthRoutes registers the login endpoint on the router
func RegisterAuthRoutes(r chi.Router, service auth.Service, authMiddleware *middleware.AuthMiddleware) {
	loginHandler := authhandler.NewLoginHandler(service, authMiddleware)

	r.Post("/api/login", loginHandler.HandleLogin)
}
