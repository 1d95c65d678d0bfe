package posts

import (
	"context"
	"errors"
	"testing"

	"Quill/internal/core/auth"
	"Quill/internal/core/users"

	"github.com/stretchr/testify/assert"
)

// Mock implementations for testing

// mockPostRepo is an in-memory implementation of the post Repository interface
type mockPostRepo struct {
	posts  map[int64]*Post
	nextID int64

	createErr error
	getAllErr error
}

func newMockPostRepo() *mockPostRepo {
	return &mockPostRepo{
		posts:  make(map[int64]*Post),
		nextID: 1,
	}
}

func (m *mockPostRepo) Create(ctx context.Context, post *Post) (*Post, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	stored := *post
	stored.ID = m.nextID
	m.nextID++
	m.posts[stored.ID] = &stored
	return &stored, nil
}

func (m *mockPostRepo) GetAll(ctx context.Context) ([]Post, error) {
	if m.getAllErr != nil {
		return nil, m.getAllErr
	}
	var result []Post
	for id := int64(1); id < m.nextID; id++ {
		if p, ok := m.posts[id]; ok {
			result = append(result, *p)
		}
	}
	return result, nil
}

func (m *mockPostRepo) GetByID(ctx context.Context, id int64) (*Post, error) {
	if p, ok := m.posts[id]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, ErrNotFound
}

func (m *mockPostRepo) UpdateLikes(ctx context.Context, id int64, likes int) (*Post, error) {
	p, ok := m.posts[id]
	if !ok {
		return nil, ErrNotFound
	}
	p.Likes = likes
	copied := *p
	return &copied, nil
}

func (m *mockPostRepo) AppendComment(ctx context.Context, id int64, comment string) (*Post, error) {
	p, ok := m.posts[id]
	if !ok {
		return nil, ErrNotFound
	}
	p.Comments = append(p.Comments, comment)
	copied := *p
	return &copied, nil
}

func (m *mockPostRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.posts[id]; !ok {
		return ErrNotFound
	}
	delete(m.posts, id)
	return nil
}

// mockOwnerDirectory records owned-post appends and removals per user
type mockOwnerDirectory struct {
	owned     map[int64][]int64
	appendErr error
	removeErr error
}

func newMockOwnerDirectory() *mockOwnerDirectory {
	return &mockOwnerDirectory{owned: make(map[int64][]int64)}
}

func (m *mockOwnerDirectory) AppendPostID(ctx context.Context, userID, postID int64) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	for _, existing := range m.owned[userID] {
		if existing == postID {
			return nil
		}
	}
	m.owned[userID] = append(m.owned[userID], postID)
	return nil
}

func (m *mockOwnerDirectory) RemovePostID(ctx context.Context, userID, postID int64) error {
	if m.removeErr != nil {
		return m.removeErr
	}
	kept := m.owned[userID][:0]
	for _, existing := range m.owned[userID] {
		if existing != postID {
			kept = append(kept, existing)
		}
	}
	m.owned[userID] = kept
	return nil
}

func newTestService() (Service, *mockPostRepo, *mockOwnerDirectory) {
	repo := newMockPostRepo()
	owners := newMockOwnerDirectory()
	return NewPostService(repo, owners), repo, owners
}

func validCreateRequest() CreatePostRequest {
	return CreatePostRequest{
		Title:  "New Blog Post",
		Author: "root",
		URL:    "http://example.com/",
	}
}

func TestCreatePost_Success(t *testing.T) {
	svc, repo, owners := newTestService()
	identity := auth.Identity{ID: "42", Username: "root"}

	created, err := svc.CreatePost(context.Background(), identity, validCreateRequest())

	assert.NoError(t, err)
	if assert.NotNil(t, created) {
		assert.Equal(t, "New Blog Post", created.Title)
		assert.Equal(t, 0, created.Likes, "likes defaults to 0 when absent")
		if assert.NotNil(t, created.OwnerID) {
			assert.Equal(t, int64(42), *created.OwnerID)
		}
	}

	// The owner-side back-reference holds the new id exactly once
	assert.Equal(t, []int64{created.ID}, owners.owned[42])
	assert.Len(t, repo.posts, 1)
}

func TestCreatePost_ExplicitLikesKept(t *testing.T) {
	svc, _, _ := newTestService()
	likes := 2
	req := validCreateRequest()
	req.Likes = &likes

	created, err := svc.CreatePost(context.Background(), auth.Identity{ID: "1"}, req)

	assert.NoError(t, err)
	assert.Equal(t, 2, created.Likes)
}

func TestCreatePost_RequiresIdentity(t *testing.T) {
	svc, repo, _ := newTestService()

	_, err := svc.CreatePost(context.Background(), auth.Identity{}, validCreateRequest())

	assert.ErrorIs(t, err, ErrUnauthenticated)
	assert.Empty(t, repo.posts, "nothing persisted without an identity")
}

func TestCreatePost_ValidationFailuresLeaveStoreUntouched(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CreatePostRequest)
	}{
		{"missing title", func(r *CreatePostRequest) { r.Title = "" }},
		{"blank title", func(r *CreatePostRequest) { r.Title = "   " }},
		{"missing url", func(r *CreatePostRequest) { r.URL = "" }},
		{"negative likes", func(r *CreatePostRequest) { n := -1; r.Likes = &n }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, owners := newTestService()
			req := validCreateRequest()
			tt.mutate(&req)

			_, err := svc.CreatePost(context.Background(), auth.Identity{ID: "1"}, req)

			assert.True(t, IsValidationError(err), "expected validation error, got %v", err)
			assert.Empty(t, repo.posts)
			assert.Empty(t, owners.owned)
		})
	}
}

func TestCreatePost_OwnerAppendFailureSurfaces(t *testing.T) {
	repo := newMockPostRepo()
	owners := newMockOwnerDirectory()
	owners.appendErr = users.ErrUserNotFound
	svc := NewPostService(repo, owners)

	_, err := svc.CreatePost(context.Background(), auth.Identity{ID: "9"}, validCreateRequest())

	assert.ErrorIs(t, err, users.ErrUserNotFound)
	// The post insert is not rolled back; the inconsistency window is
	// accepted and left to reconciliation
	assert.Len(t, repo.posts, 1)
}

func TestUpdateLikes(t *testing.T) {
	svc, repo, _ := newTestService()
	repo.posts[1] = &Post{ID: 1, Title: "t", URL: "u", Likes: 3}
	repo.nextID = 2

	t.Run("replaces likes only", func(t *testing.T) {
		updated, err := svc.UpdateLikes(context.Background(), 1, UpdateLikesRequest{Likes: 25})
		assert.NoError(t, err)
		assert.Equal(t, 25, updated.Likes)
		assert.Equal(t, "t", updated.Title)
	})

	t.Run("negative likes rejected", func(t *testing.T) {
		_, err := svc.UpdateLikes(context.Background(), 1, UpdateLikesRequest{Likes: -5})
		assert.True(t, IsValidationError(err))
		assert.Equal(t, 25, repo.posts[1].Likes)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		_, err := svc.UpdateLikes(context.Background(), 999, UpdateLikesRequest{Likes: 1})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestDeletePost(t *testing.T) {
	ownerID := int64(42)

	setup := func() (Service, *mockPostRepo, *mockOwnerDirectory) {
		svc, repo, owners := newTestService()
		repo.posts[1] = &Post{ID: 1, Title: "t", URL: "u", OwnerID: &ownerID}
		repo.nextID = 2
		owners.owned[ownerID] = []int64{1}
		return svc, repo, owners
	}

	t.Run("owner may delete", func(t *testing.T) {
		svc, repo, _ := setup()
		err := svc.DeletePost(context.Background(), auth.Identity{ID: "42"}, 1)
		assert.NoError(t, err)
		assert.Empty(t, repo.posts)
	})

	t.Run("delete clears the owner-side back-reference", func(t *testing.T) {
		svc, _, owners := setup()
		err := svc.DeletePost(context.Background(), auth.Identity{ID: "42"}, 1)
		assert.NoError(t, err)
		assert.NotContains(t, owners.owned[ownerID], int64(1))
	})

	t.Run("non-owner is forbidden and the post survives", func(t *testing.T) {
		svc, repo, owners := setup()
		err := svc.DeletePost(context.Background(), auth.Identity{ID: "7"}, 1)
		assert.ErrorIs(t, err, ErrNotOwner)
		assert.Len(t, repo.posts, 1)
		assert.Equal(t, []int64{1}, owners.owned[ownerID])
	})

	t.Run("missing identity is unauthenticated", func(t *testing.T) {
		svc, _, _ := setup()
		err := svc.DeletePost(context.Background(), auth.Identity{}, 1)
		assert.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("unknown id reports not found before the ownership check", func(t *testing.T) {
		svc, _, _ := setup()
		err := svc.DeletePost(context.Background(), auth.Identity{ID: "7"}, 999)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("owner set failure surfaces after the delete", func(t *testing.T) {
		svc, repo, owners := setup()
		owners.removeErr = users.ErrUserNotFound

		err := svc.DeletePost(context.Background(), auth.Identity{ID: "42"}, 1)

		assert.ErrorIs(t, err, users.ErrUserNotFound)
		// The delete itself is not rolled back; the stale back-reference
		// is surfaced and left to reconciliation
		assert.Empty(t, repo.posts)
	})
}

func TestAddComment(t *testing.T) {
	svc, repo, _ := newTestService()
	repo.posts[1] = &Post{ID: 1, Title: "t", URL: "u", Comments: []string{"first"}}
	repo.nextID = 2

	t.Run("appends preserving order", func(t *testing.T) {
		updated, err := svc.AddComment(context.Background(), 1, AddCommentRequest{Comment: "second"})
		assert.NoError(t, err)
		assert.Equal(t, []string{"first", "second"}, updated.Comments)
	})

	t.Run("empty comment rejected", func(t *testing.T) {
		_, err := svc.AddComment(context.Background(), 1, AddCommentRequest{Comment: "   "})
		assert.True(t, IsValidationError(err))
	})

	t.Run("unknown post is not found", func(t *testing.T) {
		_, err := svc.AddComment(context.Background(), 999, AddCommentRequest{Comment: "hello"})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestStats(t *testing.T) {
	t.Run("computes the aggregation snapshot", func(t *testing.T) {
		svc, repo, _ := newTestService()
		for i, p := range samplePosts() {
			copied := p
			repo.posts[int64(i+1)] = &copied
		}
		repo.nextID = 4

		stats, err := svc.Stats(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 10, stats.TotalLikes)
		if assert.NotNil(t, stats.FavoritePost) {
			assert.Equal(t, 5, stats.FavoritePost.Likes)
		}
		if assert.NotNil(t, stats.MostProlificAuthor) {
			assert.Equal(t, AuthorPostCount{Author: "A", Posts: 2}, *stats.MostProlificAuthor)
		}
		if assert.NotNil(t, stats.MostLikedAuthor) {
			assert.Equal(t, AuthorLikes{Author: "A", Likes: 7}, *stats.MostLikedAuthor)
		}
	})

	t.Run("empty store yields zero totals and nil sentinels", func(t *testing.T) {
		svc, _, _ := newTestService()

		stats, err := svc.Stats(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 0, stats.TotalLikes)
		assert.Nil(t, stats.FavoritePost)
		assert.Nil(t, stats.MostProlificAuthor)
		assert.Nil(t, stats.MostLikedAuthor)
	})

	t.Run("store failure surfaces", func(t *testing.T) {
		svc, repo, _ := newTestService()
		repo.getAllErr = errors.New("connection reset")

		_, err := svc.Stats(context.Background())
		assert.Error(t, err)
	})
}
