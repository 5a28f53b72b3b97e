// Package task holds the cli commands that record and list chore completions
// e.g., chores task ...
package task

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/chores/internal/cli"
	"github.com/thenoetrevino/chores/internal/cli/handler"
	"github.com/thenoetrevino/chores/internal/models"
	taskservice "github.com/thenoetrevino/chores/internal/services/task"
	"github.com/thenoetrevino/chores/internal/types"
)

// TaskCmd returns the task command. On its own it records a completion;
// the list subcommand prints the completion log.
func TaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Record that a person did a chore",
		Long: `Record a completion. The date defaults to today.

Examples:
  chores task --person 1 --chore 2
  chores task -p 1 -c 2 --date 2024-01-10
`,
		Args: cobra.NoArgs,
		RunE: handler.Command(handler.HandlerFunc(runRecord), nil),
	}

	cmd.Flags().Int64P("person", "p", 0, "Person id (required)")
	cmd.Flags().Int64P("chore", "c", 0, "Chore id (required)")
	cmd.Flags().StringP("date", "d", "", "Completion date as "+models.DateFormatHint+" (default today)")
	for _, name := range []string{"person", "chore"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			slog.Error("failed to mark flag as required", "flag", name, "error", err)
		}
	}

	handler.AddOutputFlags(cmd)

	cmd.AddCommand(ListCmd())

	return cmd
}

func runRecord(ctx context.Context, args *handler.Arguments) (any, error) {
	parser := args.Parser()

	personID, err := parser.ParseID("person")
	if err != nil {
		return nil, err
	}
	choreID, err := parser.ParseID("chore")
	if err != nil {
		return nil, err
	}
	date, err := parser.ParseStringOptional("date")
	if err != nil {
		return nil, err
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialization error: %w", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("failed to close CLI", "error", err)
		}
	}()

	t, err := cliInstance.App.TaskService.RecordTask(ctx, taskservice.RecordTaskRequest{
		PersonID: types.PersonID(personID),
		ChoreID:  types.ChoreID(choreID),
		Date:     date,
	})
	if err != nil {
		return nil, err
	}

	return cli.Changed[recorded]{Verb: "Recorded", Item: recorded(t)}, nil
}

type recorded models.Task

func (t recorded) String() string {
	return fmt.Sprintf("person %d did chore %d on %s (id:%04d)", t.PersonID, t.ChoreID, t.Done, t.ID)
}

func (t recorded) GetID() int64 {
	return int64(t.ID)
}
