package post

import (
	"encoding/json"
	"log"
	"net/http"

	"Quill/internal/core/posts"
)

// CommentHandler handles comment append requests
type CommentHandler struct {
	service posts.Service
}

// NewCommentHandler creates a new comment handler
func NewCommentHandler(service posts.Service) *CommentHandler {
	return &CommentHandler{service: service}
}

// HandleAddComment handles POST /api/posts/{postID}/comments
// Commenting is open to any caller who can resolve the post; there is
// deliberately no ownership check here.
func (h *CommentHandler) HandleAddComment(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePostID(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 64*1024)

	var req posts.AddCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	updated, err := h.service.AddComment(r.Context(), id, req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(updated); err != nil {
		log.Printf("Failed to encode comment response: %v", err)
	}
}
