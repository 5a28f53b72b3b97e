package models

import "errors"

// Domain-specific errors for user supplied values
var (
	// ErrInvalidDate indicates that a string is not a valid YYYY-MM-DD calendar date
	ErrInvalidDate = errors.New("invalid date")
)
