package post

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"LinkUp/internal/api/handlers"
	"LinkUp/internal/api/middleware"
	"LinkUp/internal/core/media"
	"LinkUp/internal/core/posts"
)

// CreatePostHandler handles the create-or-update post endpoint
type CreatePostHandler struct {
	service posts.Service
}

// NewCreatePostHandler creates a new create post handler
func NewCreatePostHandler(service posts.Service) *CreatePostHandler {
	return &CreatePostHandler{service: service}
}

// fileInput is an inline attachment: base64 payload plus its kind.
// A client that already holds a storage key sends it as a plain string
// in the post's "file" field instead.
type fileInput struct {
	Type string `json:"type"`
	Data string `json:"data"`
}

type createPostInput struct {
	Post struct {
		ID   string          `json:"id"`
		Body string          `json:"body"`
		File json.RawMessage `json:"file"`
	} `json:"post"`
}

// HandleCreate creates a new post or replaces one the requester owns
// POST /posts
//
// Request body: { "post": { "body": "...", "file": {"type":"image","data":"<base64>"} } }
func (h *CreatePostHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == "" {
		handlers.WriteFailure(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	// Inline video uploads can be large
	r.Body = http.MaxBytesReader(w, r.Body, 16<<20)

	var input createPostInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		handlers.WriteFailure(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req := posts.CreatePostRequest{
		ID:     input.Post.ID,
		UserID: userID,
		Body:   input.Post.Body,
	}

	if len(input.Post.File) > 0 {
		if err := parseFile(input.Post.File, &req); err != nil {
			handlers.WriteFailure(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	created, err := h.service.CreateOrUpdatePost(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteSuccess(w, handlers.M{"data": created})
}

// parseFile accepts either a stored key (string) or an inline upload object
func parseFile(raw json.RawMessage, req *posts.CreatePostRequest) error {
	var key string
	if err := json.Unmarshal(raw, &key); err == nil {
		req.File = key
		return nil
	}

	var file fileInput
	if err := json.Unmarshal(raw, &file); err != nil {
		return errInvalidFile
	}

	data, err := base64.StdEncoding.DecodeString(file.Data)
	if err != nil {
		return errInvalidFile
	}

	req.Upload = &media.Upload{Kind: media.Kind(file.Type), Data: data}
	return nil
}
