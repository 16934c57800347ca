package postgres

import (
	"LinkUp/internal/core/comments"
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

type postgresCommentRepo struct {
	db *sql.DB
}

// NewCommentRepository creates a new PostgreSQL comment repository
func NewCommentRepository(db *sql.DB) comments.Repository {
	return &postgresCommentRepo{db: db}
}

// Create inserts a comment and returns it joined with its author summary,
// ready for the API response and the live push channel
func (r *postgresCommentRepo) Create(ctx context.Context, comment *comments.Comment) (*comments.CommentView, error) {
	query := `
		WITH inserted AS (
			INSERT INTO comments (post_id, user_id, text)
			VALUES ($1, $2, $3)
			RETURNING id, post_id, user_id, text, created_at
		)
		SELECT i.id, i.post_id, i.user_id, i.text, i.created_at,
		       u.name, COALESCE(u.image, '')
		FROM inserted i
		JOIN users u ON u.id = i.user_id`

	view := &comments.CommentView{}
	err := r.db.QueryRowContext(ctx, query, comment.PostID, comment.UserID, comment.Text).
		Scan(&view.ID, &view.PostID, &view.UserID, &view.Text, &view.CreatedAt,
			&view.Author.Name, &view.Author.Image)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" {
			return nil, comments.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	view.Author.ID = view.UserID

	return view, nil
}

// GetByID retrieves a comment by id
func (r *postgresCommentRepo) GetByID(ctx context.Context, id string) (*comments.Comment, error) {
	comment := &comments.Comment{}
	query := `SELECT id, post_id, user_id, text, created_at FROM comments WHERE id = $1`

	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&comment.ID, &comment.PostID, &comment.UserID, &comment.Text, &comment.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, comments.ErrCommentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}

	return comment, nil
}

// Delete hard-deletes a comment
func (r *postgresCommentRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return comments.ErrCommentNotFound
	}
	return nil
}

// ListForPost returns a post's comments newest first, each joined with its
// author summary
func (r *postgresCommentRepo) ListForPost(ctx context.Context, postID string) ([]comments.CommentView, error) {
	query := `
		SELECT c.id, c.post_id, c.user_id, c.text, c.created_at,
		       u.name, COALESCE(u.image, '')
		FROM comments c
		JOIN users u ON u.id = c.user_id
		WHERE c.post_id = $1
		ORDER BY c.created_at DESC, c.id DESC`

	rows, err := r.db.QueryContext(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	result := []comments.CommentView{}
	for rows.Next() {
		var view comments.CommentView
		err := rows.Scan(&view.ID, &view.PostID, &view.UserID, &view.Text, &view.CreatedAt,
			&view.Author.Name, &view.Author.Image)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		view.Author.ID = view.UserID
		result = append(result, view)
	}
	return result, rows.Err()
}
