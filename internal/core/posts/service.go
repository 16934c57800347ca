package posts

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"LinkUp/internal/core/media"
)

const (
	defaultFeedLimit = 10
	maxFeedLimit     = 100
)

type postService struct {
	repo     Repository
	uploader Uploader
}

// NewPostService creates a new post service.
// uploader can be nil when media uploads are not needed (e.g., in tests);
// requests carrying an inline upload then fail the post write.
func NewPostService(repo Repository, uploader Uploader) Service {
	return &postService{repo: repo, uploader: uploader}
}

// CreateOrUpdatePost stores inline media, then creates or replaces the post.
// Flow:
// 1. Validate body/media presence
// 2. Upload inline media; failure aborts before any post write
// 3. Empty ID: insert with a fresh id
// 4. Non-empty ID: verify existence and ownership, then wholly replace
func (s *postService) CreateOrUpdatePost(ctx context.Context, req CreatePostRequest) (*Post, error) {
	req.Body = strings.TrimSpace(req.Body)
	if req.Body == "" && req.File == "" && req.Upload == nil {
		return nil, ErrBodyRequired
	}

	if req.Upload != nil {
		key, err := s.uploadFile(ctx, &req)
		if err != nil {
			return nil, err
		}
		req.File = key
	}

	post := &Post{
		ID:     req.ID,
		UserID: req.UserID,
		Body:   req.Body,
		File:   req.File,
	}

	if post.ID == "" {
		post.ID = uuid.NewString()
		return s.repo.Create(ctx, post)
	}

	ownerID, err := s.repo.OwnerOf(ctx, post.ID)
	if err != nil {
		return nil, err
	}
	if ownerID != req.UserID {
		return nil, ErrNotPostOwner
	}

	return s.repo.Replace(ctx, post)
}

func (s *postService) ListPosts(ctx context.Context, limit int, userID string) ([]PostView, error) {
	if limit <= 0 {
		limit = defaultFeedLimit
	}
	if limit > maxFeedLimit {
		limit = maxFeedLimit
	}
	return s.repo.List(ctx, limit, userID)
}

func (s *postService) GetPostDetail(ctx context.Context, postID string) (*PostDetail, error) {
	if strings.TrimSpace(postID) == "" {
		return nil, ErrPostNotFound
	}
	return s.repo.GetDetail(ctx, postID)
}

func (s *postService) DeletePost(ctx context.Context, postID, requesterID string) error {
	ownerID, err := s.repo.OwnerOf(ctx, postID)
	if err != nil {
		return err
	}
	if ownerID != requesterID {
		return ErrNotPostOwner
	}
	return s.repo.Delete(ctx, postID)
}

func (s *postService) uploadFile(ctx context.Context, req *CreatePostRequest) (string, error) {
	if s.uploader == nil {
		return "", media.ErrUploadFailed
	}
	return s.uploader.UploadPostFile(ctx, req.Upload.Kind, req.Upload.Data)
}
