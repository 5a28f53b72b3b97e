// Package person holds all cli commands related to household members
// e.g., chores person ...
package person

import (
	"github.com/spf13/cobra"
)

// PersonCmd returns the person parent command
func PersonCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "person",
		Short: "Manage household members",
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(RemoveCmd())
	cmd.AddCommand(ListCmd())

	return cmd
}
