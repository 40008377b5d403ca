package assistant

import "errors"

// Domain-specific errors for the assistant package.
var (
	ErrEmptyMessage    = errors.New("message is empty")
	ErrMessageTooLong  = errors.New("message exceeds the maximum length")
	ErrEmptyInput      = errors.New("input text is empty")
	ErrInputTooLong    = errors.New("input text exceeds the maximum length")
	ErrEmptyUserID     = errors.New("user id is empty")
	ErrProfileNotFound = errors.New("profile not found")
)
