package logging

import (
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Stderr is the log file value that sends logs to standard error
const Stderr = "-"

// Logger is the global slog instance for the application
var Logger *slog.Logger

// ParseLevel accepts "debug", "info", "warn", "error" (case-insensitive).
// Anything else is info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// DefaultFile returns ~/.chores/logs/chores.log
func DefaultFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".chores", "logs", "chores.log"), nil
}

// fallback receives logs when the configured file cannot be opened
var fallback io.Writer = os.Stderr

// Init initializes the logging system. Logs go to path in text format, or to
// stderr when path is "-". An empty path means DefaultFile.
// A log file that cannot be opened falls back to stderr with one warning.
// The returned closer releases the log file.
func Init(level, path string) io.Closer {
	var (
		w       io.Writer = fallback
		closer  io.Closer = nopCloser{}
		openErr error
	)

	if path != Stderr {
		var file *os.File
		if file, openErr = openFile(path); openErr == nil {
			w, closer = file, file
		}
	}

	Logger = New(w, level)
	slog.SetDefault(Logger)

	// Redirect standard log package output to the same sink
	log.SetOutput(w)
	log.SetFlags(log.LstdFlags)

	if openErr != nil {
		Logger.Warn("log file unavailable, logging to stderr", "path", path, "error", openErr)
	}

	return closer
}

func openFile(path string) (*os.File, error) {
	if path == "" {
		var err error
		if path, err = DefaultFile(); err != nil {
			return nil, err
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	// Open log file in append mode
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

// New creates a text logger writing to w at the given level
func New(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
	}))
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
