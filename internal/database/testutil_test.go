package database

import (
	"context"
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB creates an in-memory database and runs migrations
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	// every connection to :memory: is a separate database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	// Enable foreign key constraints
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	if err := runMigrations(context.Background(), db, EmbeddedAssets()); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return db
}

// storeFactories returns every DataStore implementation, each backed by fresh state
func storeFactories() map[string]func(t *testing.T) DataStore {
	return map[string]func(t *testing.T) DataStore{
		"sqlite": func(t *testing.T) DataStore {
			return NewRepository(setupTestDB(t))
		},
		"memory": func(t *testing.T) DataStore {
			return NewMemoryStore()
		},
		"logging": func(t *testing.T) DataStore {
			return NewLoggingStore(NewMemoryStore(), nil)
		},
	}
}

// forEachStore runs fn as a subtest against every DataStore implementation
func forEachStore(t *testing.T, fn func(t *testing.T, store DataStore)) {
	t.Helper()
	for name, factory := range storeFactories() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			fn(t, factory(t))
		})
	}
}

// seedHousehold adds anna and the dishes chore (level 2, every 3 days) and assigns it
func seedHousehold(t *testing.T, store DataStore) {
	t.Helper()
	ctx := context.Background()
	if _, err := store.AddPerson(ctx, "anna"); err != nil {
		t.Fatalf("Failed to add person: %v", err)
	}
	if _, err := store.AddChore(ctx, "dishes", 2, 3); err != nil {
		t.Fatalf("Failed to add chore: %v", err)
	}
	if _, err := store.Assign(ctx, 1, 1); err != nil {
		t.Fatalf("Failed to assign chore: %v", err)
	}
}
