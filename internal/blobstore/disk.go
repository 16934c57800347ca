// Package blobstore provides media.Store implementations: a local-disk
// store for development and an HTTP object store for deployments.
package blobstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DiskStore writes media objects under a local directory, serving them
// back under baseURL. Used in development and tests.
type DiskStore struct {
	dir     string
	baseURL string
}

// NewDiskStore creates the directory if needed and returns the store
func NewDiskStore(dir, baseURL string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir %s: %w", dir, err)
	}
	return &DiskStore{dir: dir, baseURL: strings.TrimSuffix(baseURL, "/")}, nil
}

// Put writes data under key, creating the key's folder on first use.
// Keys are validated against path traversal before touching the disk.
func (s *DiskStore) Put(ctx context.Context, key string, data []byte, contentType string) error {
	path, err := s.pathFor(key)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create media folder: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write media object %s: %w", key, err)
	}
	return nil
}

// URL returns the public URL for a stored key
func (s *DiskStore) URL(key string) string {
	return s.baseURL + "/uploads/" + key
}

// Dir exposes the storage root so the server can mount a file handler on it
func (s *DiskStore) Dir() string {
	return s.dir
}

func (s *DiskStore) pathFor(key string) (string, error) {
	cleaned := filepath.Clean(filepath.FromSlash(key))
	if cleaned == "." || strings.HasPrefix(cleaned, "..") || filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("invalid media key %q", key)
	}
	return filepath.Join(s.dir, cleaned), nil
}
