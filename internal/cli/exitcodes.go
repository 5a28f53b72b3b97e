package cli

import (
	"errors"

	"github.com/thenoetrevino/chores/internal/database"
	"github.com/thenoetrevino/chores/internal/models"
	assignmentservice "github.com/thenoetrevino/chores/internal/services/assignment"
	choreservice "github.com/thenoetrevino/chores/internal/services/chore"
	personservice "github.com/thenoetrevino/chores/internal/services/person"
	taskservice "github.com/thenoetrevino/chores/internal/services/task"
)

// Exit codes for CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: store initialisation, query failures, unreadable SQL assets,
	// usage mistakes or anything not covered below.
	ExitError = 1

	// ExitDataErr indicates the store rejected a change.
	// Use for: duplicate names, dangling references, failed deletions.
	ExitDataErr = 4

	// ExitValidation indicates user input failed validation.
	// Use for: malformed dates, empty names, non-positive ids.
	ExitValidation = 5
)

// validationErrors are the service sentinels reported as ExitValidation
var validationErrors = []error{
	models.ErrInvalidDate,
	database.ErrParse,
	personservice.ErrEmptyName,
	personservice.ErrInvalidID,
	choreservice.ErrEmptyDescription,
	choreservice.ErrInvalidID,
	assignmentservice.ErrInvalidPersonID,
	assignmentservice.ErrInvalidChoreID,
	assignmentservice.ErrInvalidID,
	taskservice.ErrInvalidPersonID,
	taskservice.ErrInvalidChoreID,
	ErrInvalidInput,
}

// ErrInvalidInput marks command line values rejected before reaching a service
var ErrInvalidInput = errors.New("invalid input")

// ExitCode maps an error returned by a command to the process exit code
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if errors.Is(err, database.ErrInsert) || errors.Is(err, database.ErrDelete) {
		return ExitDataErr
	}
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return ExitValidation
		}
	}
	return ExitError
}

// ErrorCode names the class of err for JSON error output
func ErrorCode(err error) string {
	switch ExitCode(err) {
	case ExitDataErr:
		return "DATA_ERROR"
	case ExitValidation:
		return "VALIDATION_ERROR"
	default:
		return "ERROR"
	}
}
