package postgres

import (
	"Quill/internal/core/posts"
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/lib/pq"
)

type postgresPostRepo struct {
	db *sql.DB
}

// NewPostRepository creates a new PostgreSQL post repository
func NewPostRepository(db *sql.DB) posts.Repository {
	return &postgresPostRepo{db: db}
}

// Create inserts a new post into the posts table
func (r *postgresPostRepo) Create(ctx context.Context, post *posts.Post) (*posts.Post, error) {
	query := `
		INSERT INTO posts (title, author, url, likes, owner_id, comments)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		post.Title, post.Author, post.URL, post.Likes, post.OwnerID, pq.Array(post.Comments)).
		Scan(&post.ID, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return post, nil
}

// GetAll retrieves all posts with the owner projection resolved.
// The join only ever exposes username and name, never the password hash.
func (r *postgresPostRepo) GetAll(ctx context.Context) ([]posts.Post, error) {
	query := `
		SELECT p.id, p.title, p.author, p.url, p.likes, p.owner_id, p.comments,
		       p.created_at, p.updated_at, u.username, u.name
		FROM posts p
		LEFT JOIN users u ON u.id = p.owner_id
		ORDER BY p.id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			slog.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	var result []posts.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post row: %w", err)
		}
		result = append(result, *post)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating post rows: %w", err)
	}

	return result, nil
}

// GetByID retrieves a single post by id with the owner projection resolved
func (r *postgresPostRepo) GetByID(ctx context.Context, id int64) (*posts.Post, error) {
	query := `
		SELECT p.id, p.title, p.author, p.url, p.likes, p.owner_id, p.comments,
		       p.created_at, p.updated_at, u.username, u.name
		FROM posts p
		LEFT JOIN users u ON u.id = p.owner_id
		WHERE p.id = $1`

	post, err := scanPost(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, posts.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post by id: %w", err)
	}

	return post, nil
}

// UpdateLikes replaces the like count of a post, leaving every other
// field untouched
func (r *postgresPostRepo) UpdateLikes(ctx context.Context, id int64, likes int) (*posts.Post, error) {
	query := `UPDATE posts SET likes = $2, updated_at = NOW() WHERE id = $1 RETURNING id`

	var updatedID int64
	err := r.db.QueryRowContext(ctx, query, id, likes).Scan(&updatedID)
	if err == sql.ErrNoRows {
		return nil, posts.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update likes: %w", err)
	}

	return r.GetByID(ctx, id)
}

// AppendComment appends a comment to the post's comment array,
// preserving insertion order
func (r *postgresPostRepo) AppendComment(ctx context.Context, id int64, comment string) (*posts.Post, error) {
	query := `
		UPDATE posts
		SET comments = array_append(comments, $2), updated_at = NOW()
		WHERE id = $1
		RETURNING id`

	var updatedID int64
	err := r.db.QueryRowContext(ctx, query, id, comment).Scan(&updatedID)
	if err == sql.ErrNoRows {
		return nil, posts.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to append comment: %w", err)
	}

	return r.GetByID(ctx, id)
}

// Delete removes a post. Returns ErrNotFound when no row existed, so
// callers can distinguish a repeat delete from a successful one.
func (r *postgresPostRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return posts.ErrNotFound
	}

	return nil
}

// scanner covers both *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanPost(row scanner) (*posts.Post, error) {
	post := &posts.Post{}
	var ownerID sql.NullInt64
	var ownerUsername, ownerName sql.NullString
	var comments pq.StringArray

	err := row.Scan(&post.ID, &post.Title, &post.Author, &post.URL, &post.Likes,
		&ownerID, &comments, &post.CreatedAt, &post.UpdatedAt,
		&ownerUsername, &ownerName)
	if err != nil {
		return nil, err
	}

	post.Comments = []string(comments)
	if post.Comments == nil {
		post.Comments = []string{}
	}
	if ownerID.Valid {
		post.OwnerID = &ownerID.Int64
		if ownerUsername.Valid {
			post.Owner = &posts.OwnerView{
				Username: ownerUsername.String,
				Name:     ownerName.String,
			}
		}
	}

	return post, nil
}
