package assignment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/chores/internal/cli"
	"github.com/thenoetrevino/chores/internal/cli/handler"
	"github.com/thenoetrevino/chores/internal/models"
	assignmentservice "github.com/thenoetrevino/chores/internal/services/assignment"
	"github.com/thenoetrevino/chores/internal/types"
)

// AddCmd returns the assignment add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Assign a chore to a person",
		Long: `Make a person responsible for a chore. Both ids must exist.

Examples:
  chores assignment add --person 1 --chore 2
`,
		Args: cobra.NoArgs,
		RunE: handler.Command(handler.HandlerFunc(runAdd), nil),
	}

	cmd.Flags().Int64P("person", "p", 0, "Person id (required)")
	cmd.Flags().Int64P("chore", "c", 0, "Chore id (required)")
	for _, name := range []string{"person", "chore"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			slog.Error("failed to mark flag as required", "flag", name, "error", err)
		}
	}

	handler.AddOutputFlags(cmd)

	return cmd
}

func runAdd(ctx context.Context, args *handler.Arguments) (any, error) {
	req := assignmentservice.AssignRequest{
		PersonID: types.PersonID(args.GetInt64("person", 0)),
		ChoreID:  types.ChoreID(args.GetInt64("chore", 0)),
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

	a, err := cliInstance.App.AssignmentService.Assign(ctx, req)
	if err != nil {
		return nil, err
	}

	return cli.Changed[assigned]{Verb: "Assigned", Item: assigned(a)}, nil
}

// assigned prints an assignment as a confirmation line
type assigned models.Assignment

func (a assigned) String() string {
	return fmt.Sprintf("chore %d to person %d (id:%04d)", a.ChoreID, a.PersonID, a.ID)
}

func (a assigned) GetID() int64 {
	return int64(a.ID)
}
