package auth

import "errors"

// Sentinel errors for authentication operations
var (
	// ErrInvalidCredentials is returned for an unknown username or a wrong
	// password. The two cases are deliberately indistinguishable to callers.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrInvalidToken is returned when a bearer token fails to parse,
	// verify, or has expired
	ErrInvalidToken = errors.New("invalid or expired token")
)
