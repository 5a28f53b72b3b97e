// Package cli provides helpers for command tests. It lives apart from
// testutil so that service tests can import testutil without pulling in app.
package cli

import (
	"database/sql"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/thenoetrevino/chores/internal/app"
	"github.com/thenoetrevino/chores/internal/database"
	"github.com/thenoetrevino/chores/internal/testutil"
)

// Today is the fixed date returned by the clock of SetupCLITest apps
var Today = time.Date(2024, time.January, 14, 9, 0, 0, 0, time.UTC)

// SetupCLITest creates an in-memory DB and returns both the DB and App instance.
// Store logging is discarded and the clock is pinned to Today.
func SetupCLITest(t *testing.T) (*sql.DB, *app.App) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	appInstance := app.New(
		database.NewRepository(db),
		app.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		app.WithClock(func() time.Time { return Today }),
	)

	return db, appInstance
}
