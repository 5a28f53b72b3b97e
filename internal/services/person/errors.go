package person

import "errors"

// Person-related errors
var (
	ErrEmptyName = errors.New("name cannot be empty")
	ErrInvalidID = errors.New("invalid person ID")
)
