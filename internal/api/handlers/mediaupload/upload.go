package mediaupload

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"LinkUp/internal/api/handlers"
	"LinkUp/internal/api/middleware"
	"LinkUp/internal/core/media"
)

// UploadHandler handles standalone media uploads (e.g., profile images
// uploaded before the profile-update call that references them)
type UploadHandler struct {
	service media.Service
}

// NewUploadHandler creates a new media upload handler
func NewUploadHandler(service media.Service) *UploadHandler {
	return &UploadHandler{service: service}
}

type uploadInput struct {
	File string `json:"file"` // base64 payload
	Kind string `json:"kind"` // "image", "video" or "profile"
}

// HandleUpload stores a media object and returns its storage key and URL
// POST /media
func (h *UploadHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	if middleware.GetUserID(r) == "" {
		handlers.WriteFailure(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 16<<20)

	var input uploadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		handlers.WriteFailure(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	data, err := base64.StdEncoding.DecodeString(input.File)
	if err != nil {
		handlers.WriteFailure(w, http.StatusBadRequest, "file must be base64 encoded")
		return
	}

	var key string
	if input.Kind == "profile" {
		key, err = h.service.UploadProfileImage(r.Context(), data)
	} else {
		key, err = h.service.UploadPostFile(r.Context(), media.Kind(input.Kind), data)
	}
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteSuccess(w, handlers.M{"data": handlers.M{
		"key": key,
		"uri": h.service.ResolveURL(key),
	}})
}

// handleServiceError converts media service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, media.ErrInvalidKind), errors.Is(err, media.ErrEmptyFile), errors.Is(err, media.ErrFileTooLarge):
		handlers.WriteFailure(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, media.ErrUploadFailed):
		handlers.WriteFailure(w, http.StatusInternalServerError, "Could not upload media")
	default:
		log.Printf("media handler error: %v", err)
		handlers.WriteFailure(w, http.StatusInternalServerError, "Could not upload media")
	}
}
