// Package cli holds the shared pieces of the command line front-end:
// the per-invocation CLI context, output formatting and exit codes.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/thenoetrevino/chores/internal/app"
	"github.com/thenoetrevino/chores/internal/config"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	appKey    contextKey = "app"
	configKey contextKey = "config"
)

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container with services
	Config *config.Config

	// owned is true when the CLI opened the database and must close it
	owned bool
}

// WithApp returns a context carrying an already constructed App.
// Commands run against it instead of opening the configured database.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// WithConfig returns a context carrying the loaded configuration
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// ConfigFromContext returns the configuration stored by WithConfig, or the defaults
func ConfigFromContext(ctx context.Context) *config.Config {
	if ctx != nil {
		if cfg, ok := ctx.Value(configKey).(*config.Config); ok && cfg != nil {
			return cfg
		}
	}
	return config.Default()
}

// GetCLIFromContext returns the CLI for a command invocation. An App placed in
// the context with WithApp is reused; otherwise the configured database is opened.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	cfg := ConfigFromContext(ctx)

	if a, ok := ctx.Value(appKey).(*app.App); ok && a != nil {
		return &CLI{App: a, Config: cfg}, nil
	}

	opts := []app.Option{app.WithLogger(slog.Default())}
	if cfg.SQLDir != "" {
		opts = append(opts, app.WithAssets(os.DirFS(cfg.SQLDir)))
	}

	a, err := app.Open(ctx, cfg.DBPath, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", cfg.DBPath, err)
	}

	return &CLI{App: a, Config: cfg, owned: true}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.App.Close()
}
