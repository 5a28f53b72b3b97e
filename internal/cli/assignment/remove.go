package assignment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/chores/internal/cli"
	"github.com/thenoetrevino/chores/internal/cli/handler"
	"github.com/thenoetrevino/chores/internal/types"
)

// RemoveCmd returns the assignment remove subcommand
func RemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove an assignment",
		Long: `Remove an assignment by id. Recorded completions are kept.

Examples:
  chores assignment remove --index 1
`,
		Args: cobra.NoArgs,
		RunE: handler.Command(handler.HandlerFunc(runRemove), nil),
	}

	cmd.Flags().Int64P("index", "i", 0, "Assignment id (required)")
	if err := cmd.MarkFlagRequired("index"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}

	handler.AddOutputFlags(cmd)

	return cmd
}

func runRemove(ctx context.Context, args *handler.Arguments) (any, error) {
	id, err := args.Parser().ParseID("index")
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

	if err := cliInstance.App.AssignmentService.RemoveAssignment(ctx, types.AssignmentID(id)); err != nil {
		return nil, err
	}

	return cli.Removed{Kind: "assignment", ID: id}, nil
}
