package users

import "errors"

var (
	// ErrUserNotFound indicates no user matches the given id or email
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailTaken indicates the email is already registered
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials covers both unknown email and password mismatch,
	// so a caller cannot distinguish which one failed
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// ValidationError reports the first request field that failed validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsValidation checks whether err is a request validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
