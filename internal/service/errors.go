package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrEmptyName = errors.New("user name is empty")
	ErrEmptyText = errors.New("message text is empty")

	ErrSenderOrReceiverNotFound = errors.New("sender or receiver not found")
)

// Client-side errors reported to the failure observer after mapping the
// transport error.
var (
	ErrServerUnavailable = errors.New("message store is unavailable")
	ErrMessageNotFound   = errors.New("message not found")
	ErrRejectedByServer  = errors.New("request rejected by message store")
)
