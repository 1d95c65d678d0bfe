package routes

import (
	"Quill/internal/api/handlers/user"
	"Quill/internal/core/users"

	"github.com/go-chi/chi/v5"
)

// RegisterUserRoutes registers user endpoints on the router
func RegisterUserRoutes(r chi.Router, service users.Service) {
	registerHandler := user.NewRegisterHandler(service)
	listHandler := user.NewListHandler(service)

	r.Route("/api/users", func(r chi.Router) {
		r.Post("/", registerHandler.HandleRegister)
		r.Get("/", listHandler.HandleList)
	})
}
