package likes

import (
	"context"
	"strings"
)

type likeService struct {
	repo Repository
}

// NewLikeService creates a new like service
func NewLikeService(repo Repository) Service {
	return &likeService{repo: repo}
}

func (s *likeService) Like(ctx context.Context, userID, postID string) (*PostLike, error) {
	if strings.TrimSpace(postID) == "" {
		return nil, ErrPostNotFound
	}
	return s.repo.Create(ctx, &PostLike{UserID: userID, PostID: postID})
}

func (s *likeService) Unlike(ctx context.Context, userID, postID string) error {
	return s.repo.Delete(ctx, userID, postID)
}
