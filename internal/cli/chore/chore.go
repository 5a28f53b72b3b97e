// Package chore holds all cli commands related to chores
// e.g., chores chore ...
package chore

import (
	"github.com/spf13/cobra"
)

// ChoreCmd returns the chore parent command
func ChoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chore",
		Short: "Manage chores",
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(RemoveCmd())
	cmd.AddCommand(ListCmd())

	return cmd
}
