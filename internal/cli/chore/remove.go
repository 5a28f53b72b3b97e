package chore

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/chores/internal/cli"
	"github.com/thenoetrevino/chores/internal/cli/handler"
	"github.com/thenoetrevino/chores/internal/types"
)

// RemoveCmd returns the chore remove subcommand
func RemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove a chore",
		Long: `Remove a chore by id, together with its assignments and completion history.

Examples:
  chores chore remove --index 3
`,
		Args: cobra.NoArgs,
		RunE: handler.Command(handler.HandlerFunc(runRemove), nil),
	}

	cmd.Flags().Int64P("index", "i", 0, "Chore id (required)")
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

	if err := cliInstance.App.ChoreService.RemoveChore(ctx, types.ChoreID(id)); err != nil {
		return nil, err
	}

	return cli.Removed{Kind: "chore", ID: id}, nil
}
