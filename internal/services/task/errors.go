package task

import "errors"

// Task-related errors
var (
	ErrInvalidPersonID = errors.New("invalid person ID")
	ErrInvalidChoreID  = errors.New("invalid chore ID")
)
