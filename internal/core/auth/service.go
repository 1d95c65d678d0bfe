package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"Quill/internal/core/users"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"golang.org/x/crypto/bcrypt"
)

const usernameClaim = "username"

// TokenResponse is returned by a successful login
type TokenResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Name     string `json:"name,omitempty"`
}

// Service issues and verifies the bearer tokens carrying a caller identity
type Service interface {
	Login(ctx context.Context, username, password string) (*TokenResponse, error)
	Verify(token string) (Identity, error)
}

type authService struct {
	userRepo users.Repository
	secret   []byte
	tokenTTL time.Duration
}

// NewAuthService creates a new auth service. secret signs HS256 tokens
// and must not be empty.
func NewAuthService(userRepo users.Repository, secret []byte, tokenTTL time.Duration) (Service, error) {
	if len(secret) == 0 {
		return nil, fmt.Errorf("token secret must not be empty")
	}
	if tokenTTL <= 0 {
		tokenTTL = time.Hour
	}
	return &authService{
		userRepo: userRepo,
		secret:   secret,
		tokenTTL: tokenTTL,
	}, nil
}

// Login checks the credentials and issues a signed token. Unknown
// username and wrong password both come back as ErrInvalidCredentials.
func (s *authService) Login(ctx context.Context, username, password string) (*TokenResponse, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	tok, err := jwt.NewBuilder().
		Subject(strconv.FormatInt(user.ID, 10)).
		Claim(usernameClaim, user.Username).
		IssuedAt(now).
		Expiration(now.Add(s.tokenTTL)).
		Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build token: %w", err)
	}

	signed, err := jwt.Sign(tok, jwt.WithKey(jwa.HS256, s.secret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &TokenResponse{
		Token:    string(signed),
		Username: user.Username,
		Name:     user.Name,
	}, nil
}

// Verify parses and validates a bearer token and extracts the caller
// identity from its claims.
func (s *authService) Verify(token string) (Identity, error) {
	tok, err := jwt.Parse([]byte(token),
		jwt.WithKey(jwa.HS256, s.secret),
		jwt.WithValidate(true),
	)
	if err != nil {
		return Identity{}, ErrInvalidToken
	}

	sub := tok.Subject()
	if sub == "" {
		return Identity{}, ErrInvalidToken
	}

	identity := Identity{ID: sub}
	if v, ok := tok.Get(usernameClaim); ok {
		if username, ok := v.(string); ok {
			identity.Username = username
		}
	}
	return identity, nil
}
