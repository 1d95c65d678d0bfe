package post

import (
	"encoding/json"
	"log"
	"net/http"

	"Quill/internal/core/posts"
)

// StatsHandler serves the aggregation snapshot over the post collection
type StatsHandler struct {
	service posts.Service
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(service posts.Service) *StatsHandler {
	return &StatsHandler{service: service}
}

// HandleStats handles GET /api/posts/stats
// Returns totalLikes, favoritePost, mostProlificAuthor and
// mostLikedAuthor computed over the full collection. The nullable
// fields are null when no posts exist.
func (h *StatsHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(stats); err != nil {
		log.Printf("Failed to encode stats response: %v", err)
	}
}
