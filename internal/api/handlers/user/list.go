package user

import (
	"encoding/json"
	"log"
	"net/http"

	"Quill/internal/core/users"
)

// ListHandler handles user listing requests
type ListHandler struct {
	service users.Service
}

// NewListHandler creates a new list handler
func NewListHandler(service users.Service) *ListHandler {
	return &ListHandler{service: service}
}

// HandleList handles GET /api/users
// Password hashes are excluded by the User JSON encoding.
func (h *ListHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	all, err := h.service.ListUsers(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}
	if all == nil {
		all = []users.User{}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(all); err != nil {
		log.Printf("Failed to encode user list response: %v", err)
	}
}
