package postgres

import (
	"Quill/internal/core/users"
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/lib/pq"
)

type postgresUserRepo struct {
	db *sql.DB
}

// NewUserRepository creates a new PostgreSQL user repository
func NewUserRepository(db *sql.DB) users.Repository {
	return &postgresUserRepo{db: db}
}

// Create inserts a new user into the users table
func (r *postgresUserRepo) Create(ctx context.Context, user *users.User) (*users.User, error) {
	query := `
		INSERT INTO users (username, name, password_hash, post_ids)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		user.Username, user.Name, user.PasswordHash, pq.Array(user.PostIDs)).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		// Check for unique constraint violations
		if strings.Contains(err.Error(), "duplicate key") &&
			strings.Contains(err.Error(), "users_username_key") {
			return nil, users.ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// GetByID retrieves a user by id
func (r *postgresUserRepo) GetByID(ctx context.Context, id int64) (*users.User, error) {
	query := `SELECT id, username, name, password_hash, post_ids, created_at FROM users WHERE id = $1`
	return r.getOne(ctx, query, id)
}

// GetByUsername retrieves a user by username
func (r *postgresUserRepo) GetByUsername(ctx context.Context, username string) (*users.User, error) {
	query := `SELECT id, username, name, password_hash, post_ids, created_at FROM users WHERE username = $1`
	return r.getOne(ctx, query, username)
}

// GetAll retrieves all users
func (r *postgresUserRepo) GetAll(ctx context.Context) ([]users.User, error) {
	query := `SELECT id, username, name, password_hash, post_ids, created_at FROM users ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			slog.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	var result []users.User
	for rows.Next() {
		user := users.User{}
		var postIDs pq.Int64Array
		err := rows.Scan(&user.ID, &user.Username, &user.Name, &user.PasswordHash,
			&postIDs, &user.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		user.PostIDs = normalizePostIDs(postIDs)
		result = append(result, user)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}

	return result, nil
}

// AppendPostID adds postID to the user's owned-post set. The guard in
// the CASE keeps the append idempotent: an id already present leaves
// the array unchanged. Zero rows affected means the user is unknown,
// since Postgres counts a no-op update of an existing row as affected.
func (r *postgresUserRepo) AppendPostID(ctx context.Context, userID, postID int64) error {
	query := `
		UPDATE users
		SET post_ids = CASE
			WHEN post_ids @> ARRAY[$2]::bigint[] THEN post_ids
			ELSE array_append(post_ids, $2)
		END
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, userID, postID)
	if err != nil {
		return fmt.Errorf("failed to append post id: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return users.ErrUserNotFound
	}

	return nil
}

// RemovePostID drops postID from the user's owned-post set.
// array_remove on an array without the id is a no-op, and the row
// still counts as affected, so zero rows affected means the user is
// unknown just like in AppendPostID.
func (r *postgresUserRepo) RemovePostID(ctx context.Context, userID, postID int64) error {
	query := `
		UPDATE users
		SET post_ids = array_remove(post_ids, $2)
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, userID, postID)
	if err != nil {
		return fmt.Errorf("failed to remove post id: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return users.ErrUserNotFound
	}

	return nil
}

func (r *postgresUserRepo) getOne(ctx context.Context, query string, arg interface{}) (*users.User, error) {
	user := &users.User{}
	var postIDs pq.Int64Array

	err := r.db.QueryRowContext(ctx, query, arg).
		Scan(&user.ID, &user.Username, &user.Name, &user.PasswordHash,
			&postIDs, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, users.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	user.PostIDs = normalizePostIDs(postIDs)
	return user, nil
}

func normalizePostIDs(ids pq.Int64Array) []int64 {
	if ids == nil {
		return []int64{}
	}
	return []int64(ids)
}
