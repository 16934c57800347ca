package notifications

import "errors"

var (
	// ErrNotificationNotFound indicates no notification matches the given id
	ErrNotificationNotFound = errors.New("notification not found")

	// ErrSelfNotification indicates sender and receiver are the same user
	ErrSelfNotification = errors.New("sender and receiver must differ")

	// ErrMissingField indicates a required notification field is empty
	ErrMissingField = errors.New("senderId, receiverId and title are required")

	// ErrNotReceiver indicates the requester is not the notification's receiver
	ErrNotReceiver = errors.New("not the notification receiver")
)
