// Package configcmd holds the commands that write and print the configuration
package configcmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/chores/internal/cli"
	"github.com/thenoetrevino/chores/internal/cli/handler"
	"github.com/thenoetrevino/chores/internal/cli/styles"
	"github.com/thenoetrevino/chores/internal/config"
)

// ErrConfigExists is returned by init when the file exists and --force is not set
var ErrConfigExists = errors.New("config file already exists, use --force to overwrite")

// ConfigCmd returns the config parent command
func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Write or show the configuration",
	}

	cmd.AddCommand(InitCmd())
	cmd.AddCommand(ShowCmd())

	return cmd
}

// InitCmd returns the config init subcommand
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to the config file",
		Long: `Write the configuration currently in effect (defaults, file, environment
and flags combined) as YAML to the config file, so it can be edited.

Examples:
  chores config init
  chores --dbpath ~/chores.db config init --force
`,
		Args: cobra.NoArgs,
		RunE: handler.SimpleCommand(handler.HandlerFunc(runInit)),
	}

	cmd.Flags().Bool("force", false, "Overwrite an existing config file")

	return cmd
}

type written struct {
	Path string `json:"path"`
}

func (w written) String() string {
	return fmt.Sprintf("%s Wrote %s", styles.SuccessStyle.Render("✓"), w.Path)
}

func runInit(ctx context.Context, args *handler.Arguments) (any, error) {
	path, _, err := config.Path(args.GetCmd().Flags())
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path: %w", err)
	}

	if _, err := os.Stat(path); err == nil && !args.GetBool("force") {
		return nil, fmt.Errorf("%s: %w", path, ErrConfigExists)
	}

	if err := cli.ConfigFromContext(ctx).Save(path); err != nil {
		return nil, fmt.Errorf("failed to write config: %w", err)
	}
	return written{Path: path}, nil
}

// ShowCmd returns the config show subcommand
func ShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := cli.ConfigFromContext(cmd.Context()).YAML()
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}
}
