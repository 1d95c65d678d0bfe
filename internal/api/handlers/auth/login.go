package auth

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"Quill/internal/api/middleware"
	coreauth "Quill/internal/core/auth"
)

// LoginHandler handles login requests
type LoginHandler struct {
	service    coreauth.Service
	authMiddle *middleware.AuthMiddleware
}

// NewLoginHandler creates a new login handler. authMiddle is used to
// establish the cookie session alongside the bearer token and may be
// nil when sessions are disabled.
func NewLoginHandler(service coreauth.Service, authMiddle *middleware.AuthMiddleware) *LoginHandler {
	return &LoginHandler{
		service:    service,
		authMiddle: authMiddle,
	}
}

// LoginInput is the login request body
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// HandleLogin handles POST /api/login
// On success returns a bearer token and sets the cookie session, so
// both API clients and browsers are covered by one endpoint.
func (h *LoginHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 64*1024)

	var input LoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	if input.Username == "" || input.Password == "" {
		writeError(w, http.StatusBadRequest, "InvalidRequest",
			"username and password are required")
		return
	}

	resp, err := h.service.Login(r.Context(), input.Username, input.Password)
	if err != nil {
		if errors.Is(err, coreauth.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "InvalidCredentials",
				"Invalid username or password")
			return
		}
		log.Printf("Unexpected error in login handler: %v", err)
		writeError(w, http.StatusInternalServerError, "InternalServerError",
			"An internal error occurred")
		return
	}

	if h.authMiddle != nil {
		identity, verr := h.service.Verify(resp.Token)
		if verr == nil {
			if serr := h.authMiddle.SaveIdentity(w, r, identity); serr != nil {
				log.Printf("Failed to save login session: %v", serr)
			}
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("Failed to encode login response: %v", err)
	}
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, statusCode int, errorType, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(errorResponse{
		Error:   errorType,
		Message: message,
	}); err != nil {
		log.Printf("Failed to encode error response: %v", err)
	}
}
