package blobstore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// HTTPStore uploads media objects to a managed object store over its
// REST surface, authenticating with a server-held service key.
// Endpoint shape: PUT {endpoint}/object/uploads/{key}.
type HTTPStore struct {
	endpoint   string
	serviceKey string
	client     *http.Client
}

// NewHTTPStore creates a store client for the given endpoint
func NewHTTPStore(endpoint, serviceKey string) *HTTPStore {
	return &HTTPStore{
		endpoint:   strings.TrimSuffix(endpoint, "/"),
		serviceKey: serviceKey,
		// 30s to handle slow networks and video-sized payloads
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *HTTPStore) Put(ctx context.Context, key string, data []byte, contentType string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, s.objectURL(key), bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.serviceKey)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Cache-Control", "3600")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("media upload request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Read a little of the body for the log line, never for the client
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("object store returned %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

// URL returns the public URL for a stored key
func (s *HTTPStore) URL(key string) string {
	return s.endpoint + "/object/public/uploads/" + key
}

func (s *HTTPStore) objectURL(key string) string {
	// Keys contain exactly one folder segment; escape each part separately
	parts := strings.Split(key, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return s.endpoint + "/object/uploads/" + strings.Join(parts, "/")
}
