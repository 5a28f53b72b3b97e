package chore

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

// ListCmd returns the chore list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List chores",
		Long: `List all chores ordered by id.

Examples:
  chores chore list
  chores chore list --json
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

	chores, err := cliInstance.App.ChoreService.ListChores(ctx)
	if err != nil {
		return nil, err
	}
	return choreList(chores), nil
}

type choreList []models.Chore

func (l choreList) String() string {
	if len(l) == 0 {
		return styles.SubtitleStyle.Render("No chores yet. Add one with: chores chore add -d <description> -f <days>")
	}
	rows := make([][]string, len(l))
	for i, c := range l {
		rows[i] = []string{
			strconv.FormatInt(int64(c.ID), 10),
			c.Description,
			strconv.Itoa(int(c.Level)),
			strconv.Itoa(int(c.Frequency)),
		}
	}
	return styles.Table([]string{"ID", "Description", "Level", "Frequency"}, rows, nil)
}

func (l choreList) IDs() []int64 {
	ids := make([]int64, len(l))
	for i, c := range l {
		ids[i] = c.GetID()
	}
	return ids
}
