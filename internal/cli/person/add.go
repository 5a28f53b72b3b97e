package person

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/chores/internal/cli"
	"github.com/thenoetrevino/chores/internal/cli/handler"
	"github.com/thenoetrevino/chores/internal/models"
	personservice "github.com/thenoetrevino/chores/internal/services/person"
)

// AddCmd returns the person add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a household member",
		Long: `Add a person. Names are unique.

Examples:
  chores person add --name anna

  # Quiet mode for bash capture
  ANNA=$(chores person add -n anna --quiet)
`,
		Args: cobra.NoArgs,
		RunE: handler.Command(&addHandler{}, nil),
	}

	cmd.Flags().StringP("name", "n", "", "Person name (required)")
	if err := cmd.MarkFlagRequired("name"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}

	handler.AddOutputFlags(cmd)

	return cmd
}

// addHandler implements handler.Handler for person creation
type addHandler struct{}

// Execute implements the Handler interface
func (h *addHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	name, err := args.Parser().ParseString("name")
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

	p, err := cliInstance.App.PersonService.AddPerson(ctx, personservice.AddPersonRequest{Name: name})
	if err != nil {
		return nil, err
	}

	return cli.Changed[models.Person]{Verb: "Added person", Item: p}, nil
}
