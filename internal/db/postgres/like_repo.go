package postgres

import (
	"LinkUp/internal/core/likes"
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

type postgresLikeRepo struct {
	db *sql.DB
}

// NewLikeRepository creates a new PostgreSQL like repository
func NewLikeRepository(db *sql.DB) likes.Repository {
	return &postgresLikeRepo{db: db}
}

// Create inserts a like row; the schema's UNIQUE(user_id, post_id)
// constraint enforces one like per user per post
func (r *postgresLikeRepo) Create(ctx context.Context, like *likes.PostLike) (*likes.PostLike, error) {
	query := `
		INSERT INTO post_likes (user_id, post_id)
		VALUES ($1, $2)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, like.UserID, like.PostID).
		Scan(&like.ID, &like.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch pqErr.Code {
			case "23505": // unique_violation
				return nil, likes.ErrAlreadyLiked
			case "23503": // foreign_key_violation
				return nil, likes.ErrPostNotFound
			}
		}
		return nil, fmt.Errorf("failed to create like: %w", err)
	}

	return like, nil
}

// Delete removes the like for (userID, postID); deleting a missing like
// is not an error
func (r *postgresLikeRepo) Delete(ctx context.Context, userID, postID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM post_likes WHERE user_id = $1 AND post_id = $2`, userID, postID)
	if err != nil {
		return fmt.Errorf("failed to delete like: %w", err)
	}
	return nil
}

// ListForPost returns all likes on a post, oldest first
func (r *postgresLikeRepo) ListForPost(ctx context.Context, postID string) ([]likes.PostLike, error) {
	query := `
		SELECT id, user_id, post_id, created_at
		FROM post_likes
		WHERE post_id = $1
		ORDER BY created_at ASC`

	rows, err := r.db.QueryContext(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list likes: %w", err)
	}
	defer rows.Close()

	result := []likes.PostLike{}
	for rows.Next() {
		var like likes.PostLike
		if err := rows.Scan(&like.ID, &like.UserID, &like.PostID, &like.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan like: %w", err)
		}
		result = append(result, like)
	}
	return result, rows.Err()
}
