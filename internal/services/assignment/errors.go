package assignment

import "errors"

// Assignment-related errors
var (
	ErrInvalidPersonID = errors.New("invalid person ID")
	ErrInvalidChoreID  = errors.New("invalid chore ID")
	ErrInvalidID       = errors.New("invalid assignment ID")
)
