// Package assignment holds all cli commands that link persons to chores
// e.g., chores assignment ...
package assignment

import (
	"github.com/spf13/cobra"
)

// AssignmentCmd returns the assignment parent command
func AssignmentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "assignment",
		Aliases: []string{"assign"},
		Short:   "Manage who is responsible for which chore",
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(RemoveCmd())
	cmd.AddCommand(ListCmd())

	return cmd
}
