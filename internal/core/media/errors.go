package media

import "errors"

var (
	// ErrUploadFailed indicates the object store rejected or failed the write
	ErrUploadFailed = errors.New("could not upload media")

	// ErrInvalidKind indicates the media kind is not image or video
	ErrInvalidKind = errors.New("media kind must be image or video")

	// ErrEmptyFile indicates a zero-length upload
	ErrEmptyFile = errors.New("media file is empty")

	// ErrFileTooLarge indicates the upload exceeds the size limit
	ErrFileTooLarge = errors.New("media file exceeds size limit")
)
