package chore

import "errors"

// Chore-related errors
var (
	ErrEmptyDescription = errors.New("description cannot be empty")
	ErrInvalidID        = errors.New("invalid chore ID")
)
