package chore

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/chores/internal/cli"
	"github.com/thenoetrevino/chores/internal/cli/handler"
	"github.com/thenoetrevino/chores/internal/models"
	choreservice "github.com/thenoetrevino/chores/internal/services/chore"
)

// AddCmd returns the chore add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a chore",
		Long: `Add a recurring chore. Descriptions are unique.
Frequency is the number of days between two completions; level is a free priority value.
Both must be between 0 and 255.

Examples:
  chores chore add --description dishes --level 2 --frequency 3
  chores chore add -d vacuum -f 7
`,
		Args: cobra.NoArgs,
		RunE: handler.Command(&addHandler{}, nil),
	}

	cmd.Flags().StringP("description", "d", "", "Chore description (required)")
	if err := cmd.MarkFlagRequired("description"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}
	cmd.Flags().IntP("level", "l", 0, "Priority level (0-255)")
	cmd.Flags().IntP("frequency", "f", 0, "Days between completions (0-255)")
	if err := cmd.MarkFlagRequired("frequency"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}

	handler.AddOutputFlags(cmd)

	return cmd
}

type addHandler struct{}

func (h *addHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	parser := args.Parser()

	description, err := parser.ParseString("description")
	if err != nil {
		return nil, err
	}
	level, err := parser.ParseUint8("level")
	if err != nil {
		return nil, err
	}
	frequency, err := parser.ParseUint8("frequency")
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

	c, err := cliInstance.App.ChoreService.AddChore(ctx, choreservice.AddChoreRequest{
		Description: description,
		Level:       level,
		Frequency:   frequency,
	})
	if err != nil {
		return nil, err
	}

	return cli.Changed[models.Chore]{Verb: "Added chore", Item: c}, nil
}
