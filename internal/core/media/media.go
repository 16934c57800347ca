package media

import "context"

// Kind distinguishes image and video uploads; each kind lands in its own
// storage folder with its own extension.
type Kind string

const (
	KindImage Kind = "image"
	KindVideo Kind = "video"
)

// Store is the external object store the service writes to.
// Implementations live in internal/blobstore.
type Store interface {
	// Put writes data under key. Keys are opaque to the store.
	Put(ctx context.Context, key string, data []byte, contentType string) error

	// URL returns a client-resolvable URL for a stored key.
	URL(key string) string
}

// Upload is an inline media payload attached to a post or sent to the
// upload endpoint, base64-decoded by the handler before it reaches the
// service.
type Upload struct {
	Kind Kind
	Data []byte
}
