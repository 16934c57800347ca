package media

import (
	"context"
	"fmt"
	"log"
	"time"
)

// maxUploadSize caps a single media object at 10MB
const maxUploadSize = 10 << 20

// Service validates uploads, generates storage keys and writes to the store.
type Service interface {
	// UploadPostFile stores an attachment for a post and returns its key.
	// Keys look like postImages/1712345678901.png or postVideos/....mp4.
	UploadPostFile(ctx context.Context, kind Kind, data []byte) (string, error)

	// UploadProfileImage stores a profile image and returns its key.
	UploadProfileImage(ctx context.Context, data []byte) (string, error)

	// ResolveURL converts a stored key into a client-resolvable URL.
	ResolveURL(key string) string
}

type mediaService struct {
	store Store
	now   func() time.Time
}

// NewMediaService creates a new media service backed by the given store
func NewMediaService(store Store) Service {
	return &mediaService{store: store, now: time.Now}
}

func (s *mediaService) UploadPostFile(ctx context.Context, kind Kind, data []byte) (string, error) {
	if err := validate(kind, data); err != nil {
		return "", err
	}

	key := s.generateKey(kind)
	if err := s.store.Put(ctx, key, data, contentType(kind)); err != nil {
		log.Printf("media upload failed: key=%s size=%d err=%v", key, len(data), err)
		return "", ErrUploadFailed
	}
	return key, nil
}

func (s *mediaService) UploadProfileImage(ctx context.Context, data []byte) (string, error) {
	if err := validate(KindImage, data); err != nil {
		return "", err
	}

	key := fmt.Sprintf("profiles/%d.png", s.now().UnixMilli())
	if err := s.store.Put(ctx, key, data, contentType(KindImage)); err != nil {
		log.Printf("profile image upload failed: key=%s err=%v", key, err)
		return "", ErrUploadFailed
	}
	return key, nil
}

func (s *mediaService) ResolveURL(key string) string {
	if key == "" {
		return ""
	}
	return s.store.URL(key)
}

// generateKey builds the {folder}/{timestamp}.{ext} storage key
func (s *mediaService) generateKey(kind Kind) string {
	if kind == KindImage {
		return fmt.Sprintf("postImages/%d.png", s.now().UnixMilli())
	}
	return fmt.Sprintf("postVideos/%d.mp4", s.now().UnixMilli())
}

func contentType(kind Kind) string {
	if kind == KindImage {
		return "image/*"
	}
	return "video/*"
}

func validate(kind Kind, data []byte) error {
	if kind != KindImage && kind != KindVideo {
		return ErrInvalidKind
	}
	if len(data) == 0 {
		return ErrEmptyFile
	}
	if len(data) > maxUploadSize {
		return ErrFileTooLarge
	}
	return nil
}
