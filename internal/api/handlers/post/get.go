package post

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"Quill/internal/core/posts"

	"github.com/go-chi/chi/v5"
)

// GetHandler handles post read requests
type GetHandler struct {
	service posts.Service
}

// NewGetHandler creates a new get handler
func NewGetHandler(service posts.Service) *GetHandler {
	return &GetHandler{service: service}
}

// HandleList handles GET /api/posts
// Returns all posts with owner projections. Public, no auth required.
func (h *GetHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	all, err := h.service.ListPosts(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}
	if all == nil {
		all = []posts.Post{}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(all); err != nil {
		log.Printf("Failed to encode post list response: %v", err)
	}
}

// HandleGet handles GET /api/posts/{postID}
func (h *GetHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePostID(w, r)
	if !ok {
		return
	}

	post, err := h.service.GetPost(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(post); err != nil {
		log.Printf("Failed to encode post response: %v", err)
	}
}

// parsePostID reads the {postID} route parameter. Writes a 400 and
// returns false when the parameter is not a valid id.
func parsePostID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "postID")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "invalid post id")
		return 0, false
	}
	return id, true
}
