package person

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/chores/internal/cli"
	"github.com/thenoetrevino/chores/internal/cli/handler"
	"github.com/thenoetrevino/chores/internal/cli/styles"
	"github.com/thenoetrevino/chores/internal/models"
)

// ListCmd returns the person list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List household members",
		Long: `List all persons ordered by id.

Examples:
  chores person list
  chores person list --json
  chores person list --quiet
`,
		Args: cobra.NoArgs,
		RunE: handler.SimpleCommand(handler.HandlerFunc(runList)),
	}

	handler.AddOutputFlags(cmd)

	return cmd
}

func runList(ctx context.Context, _ *handler.Arguments) (any, error) {
	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialization error: %w", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("failed to close CLI", "error", err)
		}
	}()

	persons, err := cliInstance.App.PersonService.ListPersons(ctx)
	if err != nil {
		return nil, err
	}
	return personList(persons), nil
}

// personList renders as a table
type personList []models.Person

func (l personList) String() string {
	if len(l) == 0 {
		return styles.SubtitleStyle.Render("No persons yet. Add one with: chores person add --name <name>")
	}
	rows := make([][]string, len(l))
	for i, p := range l {
		rows[i] = []string{strconv.FormatInt(int64(p.ID), 10), p.Name}
	}
	return styles.Table([]string{"ID", "Name"}, rows, nil)
}

// IDs implements cli.IDLister
func (l personList) IDs() []int64 {
	ids := make([]int64, len(l))
	for i, p := range l {
		ids[i] = p.GetID()
	}
	return ids
}
