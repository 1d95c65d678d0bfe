package posts

import (
	"errors"
	"fmt"
)

// Sentinel errors for common post operations
var (
	// ErrNotFound is returned when a post id does not resolve
	ErrNotFound = errors.New("post not found")

	// ErrNotOwner is returned when an authenticated caller attempts a
	// mutation reserved for the post's owner
	ErrNotOwner = errors.New("caller is not the post owner")

	// ErrUnauthenticated is returned when an operation that requires an
	// identity is called without one
	ErrUnauthenticated = errors.New("authentication required")
)

// ValidationError represents a validation error with field context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error (%s): %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsValidationError checks if error is a validation error
func IsValidationError(err error) bool {
	var valErr *ValidationError
	return errors.As(err, &valErr)
}
