package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"Quill/internal/core/auth"

	"github.com/gorilla/sessions"
)

// Context keys for storing caller information
type contextKey string

const identityKey contextKey = "identity"

// SessionName is the cookie session used by browser clients as an
// alternative to a Bearer token
const SessionName = "quill_session"

// Session value keys
const (
	sessionUserIDKey   = "user_id"
	sessionUsernameKey = "username"
)

// AuthMiddleware resolves the caller identity for protected routes.
// Two credentials are accepted: an Authorization Bearer token (API
// clients) or a cookie session established at login (browser clients).
type AuthMiddleware struct {
	authService auth.Service
	store       sessions.Store
}

// NewAuthMiddleware creates a new auth middleware. store may be nil to
// disable cookie-session authentication (e.g. in tests).
func NewAuthMiddleware(authService auth.Service, store sessions.Store) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
		store:       store,
	}
}

// RequireAuth ensures the caller presented a valid credential.
// If not, returns 401; otherwise injects the identity into the context.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := m.resolve(r)
		if !ok {
			writeAuthError(w, "Authentication required")
			return
		}

		ctx := context.WithValue(r.Context(), identityKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuth loads the identity if a valid credential is present but
// lets anonymous requests through untouched
func (m *AuthMiddleware) OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if identity, ok := m.resolve(r); ok {
			ctx := context.WithValue(r.Context(), identityKey, identity)
			r = r.WithContext(ctx)
		}
		next.ServeHTTP(w, r)
	})
}

// resolve tries the Bearer token first, then the cookie session
func (m *AuthMiddleware) resolve(r *http.Request) (auth.Identity, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return auth.Identity{}, false
		}
		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		identity, err := m.authService.Verify(token)
		if err != nil {
			log.Printf("[AUTH_FAILURE] type=invalid_token ip=%s method=%s path=%s error=%v",
				r.RemoteAddr, r.Method, r.URL.Path, err)
			return auth.Identity{}, false
		}
		return identity, true
	}

	if m.store == nil {
		return auth.Identity{}, false
	}

	session, err := m.store.Get(r, SessionName)
	if err != nil || session.IsNew {
		return auth.Identity{}, false
	}
	id, _ := session.Values[sessionUserIDKey].(string)
	username, _ := session.Values[sessionUsernameKey].(string)
	if id == "" {
		return auth.Identity{}, false
	}
	return auth.Identity{ID: id, Username: username}, true
}

// SaveIdentity records the identity in the caller's cookie session.
// Called by the login handler after successful authentication.
func (m *AuthMiddleware) SaveIdentity(w http.ResponseWriter, r *http.Request, identity auth.Identity) error {
	if m.store == nil {
		return nil
	}
	session, err := m.store.Get(r, SessionName)
	if err != nil {
		// A decode failure just means a stale cookie; start a fresh session
		session, _ = m.store.New(r, SessionName)
	}
	session.Values[sessionUserIDKey] = identity.ID
	session.Values[sessionUsernameKey] = identity.Username
	return session.Save(r, w)
}

// GetIdentity extracts the caller identity from the request context.
// Returns a zero Identity if the request was not authenticated.
func GetIdentity(r *http.Request) auth.Identity {
	identity, _ := r.Context().Value(identityKey).(auth.Identity)
	return identity
}

// WithIdentity returns a copy of ctx carrying the identity. Exported
// for handler tests that bypass the middleware.
func WithIdentity(ctx context.Context, identity auth.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

func writeAuthError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"error":   "AuthRequired",
		"message": message,
	}); err != nil {
		log.Printf("Failed to encode auth error response: %v", err)
	}
}
