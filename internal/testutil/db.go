package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/thenoetrevino/chores/internal/database"
	"github.com/thenoetrevino/chores/internal/models"
	"github.com/thenoetrevino/chores/internal/types"
)

// SetupTestDB creates an in-memory database with the full schema.
// The database is closed when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.InitDB(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	return db
}

// CreateTestPerson inserts a person and returns its id
func CreateTestPerson(t *testing.T, db *sql.DB, name string) types.PersonID {
	t.Helper()
	p, err := database.NewRepository(db).AddPerson(context.Background(), name)
	if err != nil {
		t.Fatalf("Failed to create test person: %v", err)
	}
	return p.ID
}

// CreateTestChore inserts a chore and returns its id
func CreateTestChore(t *testing.T, db *sql.DB, description string, level, frequency uint8) types.ChoreID {
	t.Helper()
	c, err := database.NewRepository(db).AddChore(context.Background(), description, level, frequency)
	if err != nil {
		t.Fatalf("Failed to create test chore: %v", err)
	}
	return c.ID
}

// CreateTestAssignment assigns a chore to a person
func CreateTestAssignment(t *testing.T, db *sql.DB, personID types.PersonID, choreID types.ChoreID) types.AssignmentID {
	t.Helper()
	a, err := database.NewRepository(db).Assign(context.Background(), personID, choreID)
	if err != nil {
		t.Fatalf("Failed to create test assignment: %v", err)
	}
	return a.ID
}

// CreateTestTask records a completion on date
func CreateTestTask(t *testing.T, db *sql.DB, personID types.PersonID, choreID types.ChoreID, date string) models.Task {
	t.Helper()
	task, err := database.NewRepository(db).AddTask(context.Background(), personID, choreID, date)
	if err != nil {
		t.Fatalf("Failed to create test task: %v", err)
	}
	return task
}
