package assignment

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/chores/internal/cli"
	"github.com/thenoetrevino/chores/internal/cli/handler"
	"github.com/thenoetrevino/chores/internal/cli/styles"
	"github.com/thenoetrevino/chores/internal/models"
)

// ListCmd returns the assignment list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List assignments",
		Long: `List all assignments ordered by id, with person and chore names.

Examples:
  chores assignment list
  chores assignment list --json
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

	a := cliInstance.App
	assignments, err := a.AssignmentService.ListAssignments(ctx)
	if err != nil {
		return nil, err
	}
	names, err := cli.LoadNames(ctx, a)
	if err != nil {
		return nil, err
	}

	return assignmentList{items: assignments, names: names}, nil
}

type assignmentList struct {
	items []models.Assignment
	names cli.Names
}

func (l assignmentList) String() string {
	if len(l.items) == 0 {
		return styles.SubtitleStyle.Render("No assignments yet. Add one with: chores assignment add -p <person> -c <chore>")
	}
	rows := make([][]string, len(l.items))
	for i, a := range l.items {
		rows[i] = []string{
			strconv.FormatInt(int64(a.ID), 10),
			l.names.Person(a.PersonID),
			l.names.Chore(a.ChoreID),
		}
	}
	return styles.Table([]string{"ID", "Person", "Chore"}, rows, nil)
}

func (l assignmentList) IDs() []int64 {
	ids := make([]int64, len(l.items))
	for i, a := range l.items {
		ids[i] = a.GetID()
	}
	return ids
}

// MarshalJSON encodes the plain assignment rows
func (l assignmentList) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.items)
}
