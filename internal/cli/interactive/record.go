package interactive

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/chores/internal/app"
	"github.com/thenoetrevino/chores/internal/cli"
	"github.com/thenoetrevino/chores/internal/cli/handler"
	"github.com/thenoetrevino/chores/internal/models"
	taskservice "github.com/thenoetrevino/chores/internal/services/task"
	"github.com/thenoetrevino/chores/internal/types"
	"github.com/thenoetrevino/chores/internal/user"
)

var (
	// ErrNoPersons is returned when there is nobody to pick
	ErrNoPersons = errors.New("no persons yet, add one with: chores person add --name <name>")
	// ErrNoChores is returned when there is no chore to pick
	ErrNoChores = errors.New("no chores yet, add one with: chores chore add -d <description> -f <days>")
)

// Outcome is the result of a record session
type Outcome struct {
	Task      models.Task `json:"task"`
	Person    string      `json:"person"`
	Chore     string      `json:"chore"`
	Confirmed bool        `json:"confirmed"`
}

func (o Outcome) String() string {
	if !o.Confirmed {
		return "Nothing saved."
	}
	return fmt.Sprintf("✓ Saved that %s did %s at %s", o.Person, o.Chore, o.Task.Done)
}

// GetID returns the id of the saved task, 0 when nothing was saved
func (o Outcome) GetID() int64 {
	return o.Task.GetID()
}

// ConfirmQuestion is the question asked before saving
func ConfirmQuestion(person models.Person, chore models.Chore, date string) string {
	return fmt.Sprintf("You will save that %s did %s at %s. Is that correct?", person, chore, date)
}

// Record runs the interactive flow against a and stores the completion when
// the user confirms. username preselects the matching person.
func Record(ctx context.Context, a *app.App, p Prompter, username string) (Outcome, error) {
	persons, err := a.PersonService.ListPersons(ctx)
	if err != nil {
		return Outcome{}, err
	}
	if len(persons) == 0 {
		return Outcome{}, ErrNoPersons
	}
	chores, err := a.ChoreService.ListChores(ctx)
	if err != nil {
		return Outcome{}, err
	}
	if len(chores) == 0 {
		return Outcome{}, ErrNoChores
	}

	date, err := p.Date(ctx, models.FormatDate(models.CivilDay(a.Now())))
	if err != nil {
		return Outcome{}, err
	}
	if _, err := models.ParseDate(date); err != nil {
		return Outcome{}, err
	}

	var def types.PersonID
	for _, person := range persons {
		if user.Matches(person.Name, username) {
			def = person.ID
			break
		}
	}

	person, err := p.Person(ctx, persons, def)
	if err != nil {
		return Outcome{}, err
	}
	chore, err := p.Chore(ctx, chores)
	if err != nil {
		return Outcome{}, err
	}

	out := Outcome{Person: person.Name, Chore: chore.Description}
	out.Confirmed, err = p.Confirm(ctx, ConfirmQuestion(person, chore, date))
	if err != nil || !out.Confirmed {
		return out, err
	}

	out.Task, err = a.TaskService.RecordTask(ctx, taskservice.RecordTaskRequest{
		PersonID: person.ID,
		ChoreID:  chore.ID,
		Date:     date,
	})
	if err != nil {
		return Outcome{}, err
	}
	return out, nil
}

// RecordCmd returns the interactive record command. newPrompter is called
// once per run; nil uses the huh prompter with the configured theme.
func RecordCmd(newPrompter func(*cli.CLI) Prompter) *cobra.Command {
	if newPrompter == nil {
		newPrompter = func(c *cli.CLI) Prompter {
			return NewHuhPrompter(c.Config.ColorScheme)
		}
	}

	cmd := &cobra.Command{
		Use:   "record",
		Short: "Interactively record that someone did a chore",
		Long: `Pick a date, a person and a chore, confirm, and the completion is saved.
The person matching your login name is preselected.`,
		Args: cobra.NoArgs,
		RunE: handler.SimpleCommand(handler.HandlerFunc(func(ctx context.Context, _ *handler.Arguments) (any, error) {
			cliInstance, err := cli.GetCLIFromContext(ctx)
			if err != nil {
				return nil, fmt.Errorf("initialization error: %w", err)
			}
			defer func() {
				if err := cliInstance.Close(); err != nil {
					slog.Error("failed to close CLI", "error", err)
				}
			}()

			return Record(ctx, cliInstance.App, newPrompter(cliInstance), user.GetCurrentUsername())
		})),
	}

	handler.AddOutputFlags(cmd)

	return cmd
}
