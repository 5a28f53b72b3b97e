package app

import (
	"io/fs"
	"log/slog"
	"time"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	logger *slog.Logger
	assets fs.FS
	now    func() time.Time
}

func newAppConfig(opts []Option) appConfig {
	cfg := appConfig{logger: slog.Default(), now: time.Now}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithAssets loads the SQL scripts from fsys instead of the embedded copies
func WithAssets(fsys fs.FS) Option {
	return func(cfg *appConfig) {
		cfg.assets = fsys
	}
}

// WithClock sets the source of "today" used when recording completions
func WithClock(now func() time.Time) Option {
	return func(cfg *appConfig) {
		if now != nil {
			cfg.now = now
		}
	}
}
