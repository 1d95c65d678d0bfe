package users

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const (
	minUsernameLength = 3
	minPasswordLength = 3
)

type userService struct {
	repo Repository
}

// NewUserService creates a new user service
func NewUserService(repo Repository) Service {
	return &userService{repo: repo}
}

// Register creates a new account. The password is bcrypt-hashed before it
// reaches the repository; the plaintext is never stored or logged.
func (s *userService) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	req.Username = strings.TrimSpace(req.Username)

	if err := validateRegisterRequest(req); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &User{
		Username:     req.Username,
		Name:         strings.TrimSpace(req.Name),
		PasswordHash: string(hash),
		PostIDs:      []int64{},
	}

	// Repository maps the unique-constraint violation to ErrUsernameTaken
	return s.repo.Create(ctx, user)
}

// GetUser retrieves a user by id
func (s *userService) GetUser(ctx context.Context, id int64) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

// GetUserByUsername retrieves a user by username
func (s *userService) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, NewValidationError("username", "username is required")
	}
	return s.repo.GetByUsername(ctx, username)
}

// ListUsers returns all users, owned post ids included
func (s *userService) ListUsers(ctx context.Context) ([]User, error) {
	return s.repo.GetAll(ctx)
}

func validateRegisterRequest(req RegisterRequest) error {
	if req.Username == "" {
		return NewValidationError("username", "username is required")
	}
	if len(req.Username) < minUsernameLength {
		return NewValidationError("username", "username must be at least 3 characters")
	}
	if req.Password == "" {
		return NewValidationError("password", "password is required")
	}
	if len(req.Password) < minPasswordLength {
		return NewValidationError("password", "password must be at least 3 characters")
	}
	return nil
}
