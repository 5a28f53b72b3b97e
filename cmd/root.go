// Package cmd assembles the chores command tree.
package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/chores/internal/cli"
	"github.com/thenoetrevino/chores/internal/cli/assignment"
	"github.com/thenoetrevino/chores/internal/cli/board"
	"github.com/thenoetrevino/chores/internal/cli/chore"
	"github.com/thenoetrevino/chores/internal/cli/configcmd"
	"github.com/thenoetrevino/chores/internal/cli/interactive"
	"github.com/thenoetrevino/chores/internal/cli/person"
	"github.com/thenoetrevino/chores/internal/cli/report"
	"github.com/thenoetrevino/chores/internal/cli/styles"
	"github.com/thenoetrevino/chores/internal/cli/task"
	"github.com/thenoetrevino/chores/internal/config"
	"github.com/thenoetrevino/chores/internal/database"
	"github.com/thenoetrevino/chores/internal/logging"
)

// NewRootCmd builds the command tree. The returned cleanup closes the log
// file opened by the last run and must be called once the command is done.
func NewRootCmd() (*cobra.Command, func()) {
	var logCloser io.Closer

	rootCmd := &cobra.Command{
		Use:   "chores",
		Short: "Chores - keep track of who does which household chore",
		Long: `Chores records household members, the chores they are responsible for
and when each chore was last done, and tells you what is due next.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			logCloser = logging.Init(cfg.LogLevel, cfg.LogFile)
			slog.Debug("configuration loaded", "db_path", cfg.DBPath, "theme", cfg.ColorScheme.Preset)

			styles.Init(cfg.ColorScheme)

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(cli.WithConfig(ctx, cfg))
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("dbpath", database.DefaultPath, "SQLite database file")
	flags.String(config.ConfigFlag, "", "Config file (default $XDG_CONFIG_HOME/chores/config.yaml)")
	flags.String("log-level", "info", "Log level: debug, info, warn or error")
	flags.String("log-file", "", `Log file (default ~/.chores/logs/chores.log, "-" for stderr)`)
	flags.String("sql-dir", "", "Directory with schema.sql and schedule.sql overriding the built-in scripts")
	flags.String("theme", "", "Color preset: default, monochrome or dragon")

	rootCmd.AddCommand(
		person.PersonCmd(),
		chore.ChoreCmd(),
		assignment.AssignmentCmd(),
		task.TaskCmd(),
		report.ReportCmd(),
		interactive.RecordCmd(nil),
		board.BoardCmd(),
		configcmd.ConfigCmd(),
	)

	cleanup := func() {
		if logCloser != nil {
			_ = logCloser.Close()
		}
	}
	return rootCmd, cleanup
}

// Run executes the command line args and returns the process exit code.
// Errors are printed to stderr, or to stdout as JSON when --json is set.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	rootCmd, cleanup := NewRootCmd()
	defer cleanup()

	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	executed, err := rootCmd.ExecuteContextC(ctx)
	if err == nil {
		return cli.ExitSuccess
	}

	slog.Error("command failed", "error", err)

	formatter := &cli.OutputFormatter{Out: stdout, Err: stderr}
	if executed != nil {
		if f := executed.Flags().Lookup("json"); f != nil && f.Value.String() == "true" {
			formatter.JSON = true
		}
	}
	if ferr := formatter.Error(cli.ErrorCode(err), err.Error()); ferr != nil {
		slog.Error("failed to print error", "error", ferr)
	}

	return cli.ExitCode(err)
}

// Execute runs the process command line
func Execute() int {
	return Run(context.Background(), os.Args[1:], os.Stdout, os.Stderr)
}
