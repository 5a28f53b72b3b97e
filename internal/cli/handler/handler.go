// Package handler provides command execution abstraction to reduce boilerplate
package handler

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thenoetrevino/chores/internal/cli"
)

// Handler defines the interface for command execution
type Handler interface {
	// Execute runs the command with parsed arguments
	Execute(ctx context.Context, args *Arguments) (any, error)
}

// HandlerFunc adapts a function to the Handler interface
type HandlerFunc func(ctx context.Context, args *Arguments) (any, error)

// Execute implements Handler
func (f HandlerFunc) Execute(ctx context.Context, args *Arguments) (any, error) {
	return f(ctx, args)
}

// Arguments captures parsed CLI arguments and flags
type Arguments struct {
	Flags map[string]any
	Args  []string
	cmd   *cobra.Command
}

// GetCmd returns the cobra command for access to flag parsing utilities
func (a *Arguments) GetCmd() *cobra.Command {
	return a.cmd
}

// Parser returns a FlagParser for the command being executed
func (a *Arguments) Parser() *FlagParser {
	return NewFlagParser(a.cmd)
}

// Command wraps common command execution logic
// Returns a cobra RunE compatible function
func Command(handler Handler, parseFlags func(*cobra.Command) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		// Parse flags
		if parseFlags != nil {
			if err := parseFlags(cmd); err != nil {
				return err
			}
		}

		jsonOutput, quietMode, err := NewFlagParser(cmd).OutputFormats()
		if err != nil {
			return err
		}
		formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode, Out: cmd.OutOrStdout()}

		arguments := &Arguments{
			Flags: parseFlagsToMap(cmd),
			Args:  args,
			cmd:   cmd,
		}

		result, err := handler.Execute(ctx, arguments)
		if err != nil {
			return err
		}

		// Common output formatting
		return formatter.Success(result)
	}
}

// SimpleCommand wraps command execution with minimal setup
// Use this for commands that don't need complex flag parsing
func SimpleCommand(handler Handler) func(*cobra.Command, []string) error {
	return Command(handler, nil)
}

// AddOutputFlags registers --json and --quiet
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().BoolP("quiet", "q", false, "Minimal output (IDs only)")
}

// parseFlagsToMap converts explicitly set cobra command flags to a map
func parseFlagsToMap(cmd *cobra.Command) map[string]any {
	flags := make(map[string]any)

	cmd.Flags().Visit(func(f *pflag.Flag) {
		var (
			v   any
			err error
		)
		switch f.Value.Type() {
		case "string":
			v, err = cmd.Flags().GetString(f.Name)
		case "int":
			v, err = cmd.Flags().GetInt(f.Name)
		case "int64":
			v, err = cmd.Flags().GetInt64(f.Name)
		case "bool":
			v, err = cmd.Flags().GetBool(f.Name)
		default:
			slog.Debug("unsupported flag type", "flag", f.Name, "type", f.Value.Type())
			return
		}
		if err == nil {
			flags[f.Name] = v
		}
	})

	return flags
}

// GetString retrieves a string flag with default
func (a *Arguments) GetString(name string, defaultVal string) string {
	if val, ok := a.Flags[name].(string); ok {
		return val
	}
	return defaultVal
}

// GetInt64 retrieves an int64 flag with default
func (a *Arguments) GetInt64(name string, defaultVal int64) int64 {
	if val, ok := a.Flags[name].(int64); ok {
		return val
	}
	return defaultVal
}

// GetBool retrieves a bool flag
func (a *Arguments) GetBool(name string) bool {
	val, _ := a.Flags[name].(bool)
	return val
}
