package users

import (
	"time"
)

// User represents a registered account that can own posts.
// PostIDs is the denormalized owner side of the user/post relation:
// every post whose owner is this user appears here exactly once.
type User struct {
	CreatedAt    time.Time `json:"createdAt"`
	Username     string    `json:"username"`
	Name         string    `json:"name,omitempty"`
	PasswordHash string    `json:"-"`
	PostIDs      []int64   `json:"posts"`
	ID           int64     `json:"id"`
}

// RegisterRequest represents the input for creating a new account
type RegisterRequest struct {
	Username string `json:"username"`
	Name     string `json:"name,omitempty"`
	Password string `json:"password"`
}
