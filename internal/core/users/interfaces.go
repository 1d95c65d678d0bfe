package users

import "context"

// Repository defines the data access interface for users
type Repository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetAll(ctx context.Context) ([]User, error)

	// AppendPostID adds postID to the user's owned-post set. The append is
	// idempotent: repeated calls with the same id never produce duplicates.
	// Returns ErrUserNotFound if the user does not exist.
	AppendPostID(ctx context.Context, userID, postID int64) error

	// RemovePostID drops postID from the user's owned-post set. Removing
	// an id that is not present is a no-op. Returns ErrUserNotFound if
	// the user does not exist.
	RemovePostID(ctx context.Context, userID, postID int64) error
}

// Service defines the business logic interface for users
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*User, error)
	GetUser(ctx context.Context, id int64) (*User, error)
	GetUserByUsername(ctx context.Context, username string) (*User, error)
	ListUsers(ctx context.Context) ([]User, error)
}
