// Package interactive implements the guided "record" flow: pick a date, a
// person and a chore, confirm, then store the completion.
package interactive

import (
	"context"
	"errors"

	"github.com/thenoetrevino/chores/internal/models"
	"github.com/thenoetrevino/chores/internal/types"
)

// ErrAborted is returned when the user cancels a prompt
var ErrAborted = errors.New("aborted")

// Prompter asks the user for the values of a completion record
type Prompter interface {
	// Date asks for a civil date, starting from def
	Date(ctx context.Context, def string) (string, error)
	// Person asks the user to pick one of persons; def is preselected when non-zero
	Person(ctx context.Context, persons []models.Person, def types.PersonID) (models.Person, error)
	// Chore asks the user to pick one of chores
	Chore(ctx context.Context, chores []models.Chore) (models.Chore, error)
	// Confirm asks a yes/no question that defaults to yes
	Confirm(ctx context.Context, question string) (bool, error)
}
