// Package database handles the initialization and connection to the SQLite db
// and implements every chore operation on top of it.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// DefaultPath is the database file used when no --dbpath is given
const DefaultPath = "test.db"

// InitDB opens (creating if necessary) the database file at path and applies
// the schema. Failures are reported as store initialisation errors.
// WithAssets replaces the embedded schema script.
func InitDB(ctx context.Context, path string, opts ...Option) (*sql.DB, error) {
	o := newRepositoryOptions(opts)

	if path == "" {
		path = DefaultPath
	}

	if !isMemoryPath(path) {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, storeInitError(path, fmt.Errorf("failed to create directory: %w", err))
			}
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, storeInitError(path, fmt.Errorf("failed to open database: %w", err))
	}

	// SQLite benefits from a single writer connection, and PRAGMAs are per connection
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		// Enable foreign key constraints (required for CASCADE deletions)
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		// SQLite will retry for this duration when the file is locked
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			slog.Error("failed to apply pragma", "pragma", pragma, "error", err)
			closeDB(db)
			return nil, storeInitError(path, err)
		}
	}

	if err := db.PingContext(ctx); err != nil {
		closeDB(db)
		return nil, storeInitError(path, fmt.Errorf("database ping failed: %w", err))
	}

	if err := runMigrations(ctx, db, o.assets); err != nil {
		closeDB(db)
		return nil, storeInitError(path, fmt.Errorf("failed to run migrations: %w", err))
	}

	slog.Debug("database ready", "path", path)
	return db, nil
}

func closeDB(db *sql.DB) {
	if err := db.Close(); err != nil {
		slog.Error("error closing db", "error", err)
	}
}

func isMemoryPath(path string) bool {
	return path == ":memory:" || filepath.Base(path) == ":memory:"
}
