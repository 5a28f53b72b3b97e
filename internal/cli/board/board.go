// Package board holds the command that opens the full-screen schedule board
package board

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/chores/internal/cli"
	"github.com/thenoetrevino/chores/internal/launcher"
)

// BoardCmd returns the board command
func BoardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Open the schedule board",
		Long: `Full-screen view of every assigned chore.

Keys:
  j/k, ↓/↑  move
  d         mark the selected chore done today
  r         reload
  q         quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cliInstance, err := cli.GetCLIFromContext(cmd.Context())
			if err != nil {
				return fmt.Errorf("initialization error: %w", err)
			}
			defer func() {
				if err := cliInstance.Close(); err != nil {
					slog.Error("failed to close CLI", "error", err)
				}
			}()

			return launcher.Launch(cmd.Context(), cliInstance.App)
		},
	}
}
