package repository

import "errors"

// Storage errors shared by all repository implementations.
var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrEmptyUserID     = errors.New("user id is empty")
)
