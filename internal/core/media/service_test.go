package media

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore records the last Put and can be told to fail
type fakeStore struct {
	lastKey  string
	lastType string
	err      error
}

func (f *fakeStore) Put(ctx context.Context, key string, data []byte, contentType string) error {
	if f.err != nil {
		return f.err
	}
	f.lastKey = key
	f.lastType = contentType
	return nil
}

func (f *fakeStore) URL(key string) string {
	return "http://store.local/" + key
}

func TestUploadPostFile_KeyFormat(t *testing.T) {
	store := &fakeStore{}
	service := NewMediaService(store)

	key, err := service.UploadPostFile(context.Background(), KindImage, []byte("png-bytes"))
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^postImages/\d+\.png$`), key)
	assert.Equal(t, "image/*", store.lastType)

	key, err = service.UploadPostFile(context.Background(), KindVideo, []byte("mp4-bytes"))
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^postVideos/\d+\.mp4$`), key)
	assert.Equal(t, "video/*", store.lastType)
}

func TestUploadPostFile_StoreFailure(t *testing.T) {
	store := &fakeStore{err: errors.New("boom")}
	service := NewMediaService(store)

	_, err := service.UploadPostFile(context.Background(), KindImage, []byte("data"))
	assert.ErrorIs(t, err, ErrUploadFailed)
}

func TestUploadPostFile_Validation(t *testing.T) {
	service := NewMediaService(&fakeStore{})

	_, err := service.UploadPostFile(context.Background(), Kind("gif"), []byte("data"))
	assert.ErrorIs(t, err, ErrInvalidKind)

	_, err = service.UploadPostFile(context.Background(), KindImage, nil)
	assert.ErrorIs(t, err, ErrEmptyFile)

	_, err = service.UploadPostFile(context.Background(), KindImage, make([]byte, maxUploadSize+1))
	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestResolveURL(t *testing.T) {
	service := NewMediaService(&fakeStore{})

	assert.Equal(t, "http://store.local/postImages/1.png", service.ResolveURL("postImages/1.png"))
	assert.Equal(t, "", service.ResolveURL(""))
}
