package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/chores/internal/app"
	clipkg "github.com/thenoetrevino/chores/internal/cli"
)

// ExecuteCLICommand executes a CLI command with a test app instance.
// The app is injected into the command context so commands never open
// the configured database. Stdout and stderr are captured separately.
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()

	out, _, err := ExecuteCLICommandWithContext(t, context.Background(), testApp, cmd, args)
	return out, err
}

// ExecuteCLICommandWithContext executes a CLI command with a specific context and test app
func ExecuteCLICommandWithContext(t *testing.T, ctx context.Context, testApp *app.App, cmd *cobra.Command, args []string) (string, string, error) {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	// Disable usage output on error for cleaner test output
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.ExecuteContext(clipkg.WithApp(ctx, testApp))
	return stdout.String(), stderr.String(), err
}
