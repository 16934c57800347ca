package posts

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"LinkUp/internal/core/media"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, post *Post) (*Post, error) {
	args := m.Called(ctx, post)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Post), args.Error(1)
}

func (m *MockRepository) Replace(ctx context.Context, post *Post) (*Post, error) {
	args := m.Called(ctx, post)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Post), args.Error(1)
}

func (m *MockRepository) OwnerOf(ctx context.Context, postID string) (string, error) {
	args := m.Called(ctx, postID)
	return args.String(0), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context, limit int, userID string) ([]PostView, error) {
	args := m.Called(ctx, limit, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]PostView), args.Error(1)
}

func (m *MockRepository) GetDetail(ctx context.Context, postID string) (*PostDetail, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*PostDetail), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, postID string) error {
	args := m.Called(ctx, postID)
	return args.Error(0)
}

// fakeUploader returns a fixed key or error
type fakeUploader struct {
	key string
	err error
}

func (f fakeUploader) UploadPostFile(ctx context.Context, kind media.Kind, data []byte) (string, error) {
	return f.key, f.err
}

func TestCreatePost_GeneratesID(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *Post) bool {
		return p.ID != "" && p.UserID == "alice" && p.Body == "hi"
	})).Return(&Post{ID: "generated", UserID: "alice", Body: "hi"}, nil)

	service := NewPostService(mockRepo, nil)
	post, err := service.CreateOrUpdatePost(context.Background(), CreatePostRequest{UserID: "alice", Body: "hi"})

	require.NoError(t, err)
	assert.Equal(t, "generated", post.ID)
	mockRepo.AssertNotCalled(t, "Replace", mock.Anything, mock.Anything)
}

func TestCreatePost_UploadHappensFirst(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *Post) bool {
		return p.File == "postImages/123.png"
	})).Return(&Post{ID: "p1", File: "postImages/123.png"}, nil)

	service := NewPostService(mockRepo, fakeUploader{key: "postImages/123.png"})
	post, err := service.CreateOrUpdatePost(context.Background(), CreatePostRequest{
		UserID: "alice",
		Body:   "look",
		Upload: &media.Upload{Kind: media.KindImage, Data: []byte("png")},
	})

	require.NoError(t, err)
	assert.Equal(t, "postImages/123.png", post.File)
}

func TestCreatePost_UploadFailureAbortsWrite(t *testing.T) {
	mockRepo := new(MockRepository)

	service := NewPostService(mockRepo, fakeUploader{err: media.ErrUploadFailed})
	_, err := service.CreateOrUpdatePost(context.Background(), CreatePostRequest{
		UserID: "alice",
		Body:   "look",
		Upload: &media.Upload{Kind: media.KindImage, Data: []byte("png")},
	})

	assert.ErrorIs(t, err, media.ErrUploadFailed)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	mockRepo.AssertNotCalled(t, "Replace", mock.Anything, mock.Anything)
}

func TestUpdatePost_RequiresOwnership(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("OwnerOf", mock.Anything, "p1").Return("alice", nil)

	service := NewPostService(mockRepo, nil)
	_, err := service.CreateOrUpdatePost(context.Background(), CreatePostRequest{ID: "p1", UserID: "mallory", Body: "hijack"})

	assert.ErrorIs(t, err, ErrNotPostOwner)
	mockRepo.AssertNotCalled(t, "Replace", mock.Anything, mock.Anything)
}

func TestUpdatePost_ReplacesWholly(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("OwnerOf", mock.Anything, "p1").Return("alice", nil)
	mockRepo.On("Replace", mock.Anything, mock.MatchedBy(func(p *Post) bool {
		return p.ID == "p1" && p.Body == "edited" && p.File == ""
	})).Return(&Post{ID: "p1", UserID: "alice", Body: "edited"}, nil)

	service := NewPostService(mockRepo, nil)
	post, err := service.CreateOrUpdatePost(context.Background(), CreatePostRequest{ID: "p1", UserID: "alice", Body: "edited"})

	require.NoError(t, err)
	assert.Equal(t, "edited", post.Body)
}

func TestUpdatePost_MissingPost(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("OwnerOf", mock.Anything, "ghost").Return("", ErrPostNotFound)

	service := NewPostService(mockRepo, nil)
	_, err := service.CreateOrUpdatePost(context.Background(), CreatePostRequest{ID: "ghost", UserID: "alice", Body: "hi"})

	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestCreatePost_EmptyBody(t *testing.T) {
	service := NewPostService(new(MockRepository), nil)
	_, err := service.CreateOrUpdatePost(context.Background(), CreatePostRequest{UserID: "alice", Body: "   "})
	assert.ErrorIs(t, err, ErrBodyRequired)
}

func TestListPosts_ClampsLimit(t *testing.T) {
	cases := []struct {
		name      string
		requested int
		effective int
	}{
		{"zero falls back to default", 0, 10},
		{"negative falls back to default", -3, 10},
		{"in range passes through", 25, 25},
		{"over cap clamps", 5000, 100},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			mockRepo.On("List", mock.Anything, tc.effective, "").Return([]PostView{}, nil)

			service := NewPostService(mockRepo, nil)
			_, err := service.ListPosts(context.Background(), tc.requested, "")

			require.NoError(t, err)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestDeletePost_OwnerOnly(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("OwnerOf", mock.Anything, "p1").Return("alice", nil)
	mockRepo.On("Delete", mock.Anything, "p1").Return(nil)

	service := NewPostService(mockRepo, nil)

	assert.ErrorIs(t, service.DeletePost(context.Background(), "p1", "mallory"), ErrNotPostOwner)
	assert.NoError(t, service.DeletePost(context.Background(), "p1", "alice"))
}
