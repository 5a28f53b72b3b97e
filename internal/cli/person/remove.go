package person

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/chores/internal/cli"
	"github.com/thenoetrevino/chores/internal/cli/handler"
	"github.com/thenoetrevino/chores/internal/types"
)

// RemoveCmd returns the person remove subcommand
func RemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove a household member",
		Long: `Remove a person by id. Their assignments and completion history are removed too.
Removing an id that does not exist is not an error.

Examples:
  chores person remove --index 2
`,
		Args: cobra.NoArgs,
		RunE: handler.Command(handler.HandlerFunc(runRemove), nil),
	}

	cmd.Flags().Int64P("index", "i", 0, "Person id (required)")
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

	if err := cliInstance.App.PersonService.RemovePerson(ctx, types.PersonID(id)); err != nil {
		return nil, err
	}

	return cli.Removed{Kind: "person", ID: id}, nil
}
