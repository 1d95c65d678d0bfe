package posts

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"Quill/internal/core/auth"
)

type postService struct {
	repo   Repository
	owners OwnerDirectory
}

// NewPostService creates a new post service
func NewPostService(repo Repository, owners OwnerDirectory) Service {
	return &postService{
		repo:   repo,
		owners: owners,
	}
}

// CreatePost validates and stores a new post owned by the caller.
// Flow:
// 1. Require an identity (the legacy ownerless path is gone)
// 2. Validate title/url/likes
// 3. Insert the post with owner = caller
// 4. Append the new id to the owner's post set
//
// Steps 3 and 4 are two separate writes with no transaction around
// them. If step 4 fails the post exists but is missing from the
// owner's set; the error is surfaced, not rolled back, and a
// reconciliation pass outside this service is expected to repair it.
func (s *postService) CreatePost(ctx context.Context, identity auth.Identity, req CreatePostRequest) (*Post, error) {
	if identity.IsZero() {
		return nil, ErrUnauthenticated
	}

	ownerID, err := strconv.ParseInt(strings.TrimSpace(identity.ID), 10, 64)
	if err != nil {
		return nil, ErrUnauthenticated
	}

	if err := validateCreateRequest(req); err != nil {
		return nil, err
	}

	likes := 0
	if req.Likes != nil {
		likes = *req.Likes
	}

	post := &Post{
		Title:    strings.TrimSpace(req.Title),
		Author:   strings.TrimSpace(req.Author),
		URL:      strings.TrimSpace(req.URL),
		Likes:    likes,
		OwnerID:  &ownerID,
		Comments: []string{},
	}

	created, err := s.repo.Create(ctx, post)
	if err != nil {
		return nil, err
	}

	if err := s.owners.AppendPostID(ctx, ownerID, created.ID); err != nil {
		slog.Error("post stored but owner set not updated",
			slog.Int64("post_id", created.ID),
			slog.Int64("owner_id", ownerID),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	return created, nil
}

// GetPost retrieves a single post by id
func (s *postService) GetPost(ctx context.Context, id int64) (*Post, error) {
	return s.repo.GetByID(ctx, id)
}

// ListPosts returns all posts with their owner projections resolved
func (s *postService) ListPosts(ctx context.Context) ([]Post, error) {
	return s.repo.GetAll(ctx)
}

// UpdateLikes replaces the like count of a post. Any caller may do
// this; the payload is restricted to the likes field.
func (s *postService) UpdateLikes(ctx context.Context, id int64, req UpdateLikesRequest) (*Post, error) {
	if req.Likes < 0 {
		return nil, NewValidationError("likes", "likes must not be negative")
	}
	return s.repo.UpdateLikes(ctx, id, req.Likes)
}

// DeletePost removes a post after the ownership gate passes, then
// drops the id from the owner's post set so no stale back-reference
// survives. Not-found is checked before ownership so callers probing
// with bad ids learn nothing about who owns what. Like create, the
// two writes are not transactional; a failure after the delete is
// surfaced and left to reconciliation.
func (s *postService) DeletePost(ctx context.Context, identity auth.Identity, id int64) error {
	if identity.IsZero() {
		return ErrUnauthenticated
	}

	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !CanMutate(identity, post) {
		return ErrNotOwner
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.owners.RemovePostID(ctx, *post.OwnerID, id); err != nil {
		slog.Error("post deleted but owner set not updated",
			slog.Int64("post_id", id),
			slog.Int64("owner_id", *post.OwnerID),
			slog.String("error", err.Error()),
		)
		return err
	}

	return nil
}

// AddComment appends a comment to a post. Commenting is open to anyone
// who can resolve the post; no ownership gate applies.
func (s *postService) AddComment(ctx context.Context, id int64, req AddCommentRequest) (*Post, error) {
	if strings.TrimSpace(req.Comment) == "" {
		return nil, NewValidationError("comment", "comment must not be empty")
	}
	return s.repo.AppendComment(ctx, id, req.Comment)
}

// Stats fetches the collection once and runs the pure aggregation
// functions over it. The aggregations themselves never query the store.
func (s *postService) Stats(ctx context.Context) (*StatsView, error) {
	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	return &StatsView{
		TotalLikes:         TotalLikes(all),
		FavoritePost:       FavoritePost(all),
		MostProlificAuthor: MostProlificAuthor(all),
		MostLikedAuthor:    MostLikedAuthor(all),
	}, nil
}

func validateCreateRequest(req CreatePostRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return NewValidationError("title", "title is required")
	}
	if strings.TrimSpace(req.URL) == "" {
		return NewValidationError("url", "url is required")
	}
	if req.Likes != nil && *req.Likes < 0 {
		return NewValidationError("likes", "likes must not be negative")
	}
	return nil
}
