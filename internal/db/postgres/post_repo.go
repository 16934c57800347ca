package postgres

import (
	"LinkUp/internal/core/likes"
	"LinkUp/internal/core/posts"
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

type postgresPostRepo struct {
	db *sql.DB
}

// NewPostRepository creates a new PostgreSQL post repository
func NewPostRepository(db *sql.DB) posts.Repository {
	return &postgresPostRepo{db: db}
}

// Create inserts a new post with its service-generated id
func (r *postgresPostRepo) Create(ctx context.Context, post *posts.Post) (*posts.Post, error) {
	query := `
		INSERT INTO posts (id, user_id, body, file)
		VALUES ($1, $2, $3, NULLIF($4, ''))
		RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query, post.ID, post.UserID, post.Body, post.File).
		Scan(&post.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" {
			return nil, fmt.Errorf("failed to create post: unknown user: %w", err)
		}
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return post, nil
}

// Replace wholly replaces the body and file of an existing post.
// Ownership is checked by the service before this is called.
func (r *postgresPostRepo) Replace(ctx context.Context, post *posts.Post) (*posts.Post, error) {
	query := `
		UPDATE posts
		SET body = $2, file = NULLIF($3, '')
		WHERE id = $1
		RETURNING user_id, created_at`

	err := r.db.QueryRowContext(ctx, query, post.ID, post.Body, post.File).
		Scan(&post.UserID, &post.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, posts.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to replace post: %w", err)
	}

	return post, nil
}

// OwnerOf returns the owning user id for a post
func (r *postgresPostRepo) OwnerOf(ctx context.Context, postID string) (string, error) {
	var ownerID string
	err := r.db.QueryRowContext(ctx, `SELECT user_id FROM posts WHERE id = $1`, postID).
		Scan(&ownerID)
	if err == sql.ErrNoRows {
		return "", posts.ErrPostNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to resolve post owner: %w", err)
	}
	return ownerID, nil
}

// List returns hydrated posts newest first. A non-empty userID narrows the
// feed to that author. Likes are loaded in one follow-up query for the
// whole page rather than per post.
func (r *postgresPostRepo) List(ctx context.Context, limit int, userID string) ([]posts.PostView, error) {
	query := `
		SELECT p.id, p.user_id, p.body, COALESCE(p.file, ''), p.created_at,
		       u.name, COALESCE(u.image, ''),
		       (SELECT COUNT(*) FROM comments c WHERE c.post_id = p.id)
		FROM posts p
		JOIN users u ON u.id = p.user_id
		WHERE ($2 = '' OR p.user_id::text = $2)
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	views := []posts.PostView{}
	index := map[string]int{}
	ids := []string{}

	for rows.Next() {
		var v posts.PostView
		err := rows.Scan(&v.ID, &v.UserID, &v.Body, &v.File, &v.CreatedAt,
			&v.Author.Name, &v.Author.Image, &v.CommentCount)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		v.Author.ID = v.UserID
		v.Likes = []likes.PostLike{}
		index[v.ID] = len(views)
		ids = append(ids, v.ID)
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	if err := r.attachLikes(ctx, views, index, ids); err != nil {
		return nil, err
	}

	return views, nil
}

// GetDetail returns one post with author, like set and full comments
func (r *postgresPostRepo) GetDetail(ctx context.Context, postID string) (*posts.PostDetail, error) {
	query := `
		SELECT p.id, p.user_id, p.body, COALESCE(p.file, ''), p.created_at,
		       u.name, COALESCE(u.image, ''),
		       (SELECT COUNT(*) FROM comments c WHERE c.post_id = p.id)
		FROM posts p
		JOIN users u ON u.id = p.user_id
		WHERE p.id = $1`

	detail := &posts.PostDetail{}
	v := &detail.PostView
	err := r.db.QueryRowContext(ctx, query, postID).
		Scan(&v.ID, &v.UserID, &v.Body, &v.File, &v.CreatedAt,
			&v.Author.Name, &v.Author.Image, &v.CommentCount)
	if err == sql.ErrNoRows {
		return nil, posts.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	v.Author.ID = v.UserID
	v.Likes = []likes.PostLike{}

	views := []posts.PostView{*v}
	if err := r.attachLikes(ctx, views, map[string]int{v.ID: 0}, []string{v.ID}); err != nil {
		return nil, err
	}
	detail.PostView = views[0]

	comments, err := NewCommentRepository(r.db).ListForPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	detail.Comments = comments

	return detail, nil
}

// Delete hard-deletes a post; dependent rows cascade via FK rules
func (r *postgresPostRepo) Delete(ctx context.Context, postID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, postID)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return posts.ErrPostNotFound
	}
	return nil
}

// attachLikes fills the Likes slice of each view from a single query over
// the page's post ids
func (r *postgresPostRepo) attachLikes(ctx context.Context, views []posts.PostView, index map[string]int, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	query := `
		SELECT id, user_id, post_id, created_at
		FROM post_likes
		WHERE post_id = ANY($1::uuid[])
		ORDER BY created_at ASC`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("failed to load likes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var like likes.PostLike
		if err := rows.Scan(&like.ID, &like.UserID, &like.PostID, &like.CreatedAt); err != nil {
			return fmt.Errorf("failed to scan like: %w", err)
		}
		if i, ok := index[like.PostID]; ok {
			views[i].Likes = append(views[i].Likes, like)
		}
	}
	return rows.Err()
}
