package posts

import (
	"context"

	"Quill/internal/core/auth"
)

// Service defines the business logic interface for posts.
// All mutations flow through here so the ownership gate and the
// owner-side back-reference stay consistent.
type Service interface {
	// CreatePost validates and stores a post owned by the caller, then
	// records the new id in the owner's post set
	CreatePost(ctx context.Context, identity auth.Identity, req CreatePostRequest) (*Post, error)

	// GetPost and ListPosts are ungated reads
	GetPost(ctx context.Context, id int64) (*Post, error)
	ListPosts(ctx context.Context) ([]Post, error)

	// UpdateLikes replaces the like count. Deliberately not ownership-gated.
	UpdateLikes(ctx context.Context, id int64, req UpdateLikesRequest) (*Post, error)

	// DeletePost removes a post. Only the owner may delete.
	DeletePost(ctx context.Context, identity auth.Identity, id int64) error

	// AddComment appends a comment to a post. Open to any caller.
	AddComment(ctx context.Context, id int64, req AddCommentRequest) (*Post, error)

	// Stats computes the aggregation snapshot over all stored posts
	Stats(ctx context.Context) (*StatsView, error)
}

// Repository defines the data access interface for posts
type Repository interface {
	Create(ctx context.Context, post *Post) (*Post, error)
	GetAll(ctx context.Context) ([]Post, error)
	GetByID(ctx context.Context, id int64) (*Post, error)
	UpdateLikes(ctx context.Context, id int64, likes int) (*Post, error)
	AppendComment(ctx context.Context, id int64, comment string) (*Post, error)
	Delete(ctx context.Context, id int64) error
}

// OwnerDirectory is the slice of the user repository the post service
// needs to maintain the owner-side back-reference
type OwnerDirectory interface {
	AppendPostID(ctx context.Context, userID, postID int64) error
	RemovePostID(ctx context.Context, userID, postID int64) error
}
