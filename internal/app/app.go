package app

import (
	"context"
	"database/sql"
	"time"

	"github.com/thenoetrevino/chores/internal/database"
	assignmentservice "github.com/thenoetrevino/chores/internal/services/assignment"
	choreservice "github.com/thenoetrevino/chores/internal/services/chore"
	personservice "github.com/thenoetrevino/chores/internal/services/person"
	taskservice "github.com/thenoetrevino/chores/internal/services/task"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	// Repository layer (direct database access)
	repo database.DataStore

	// db is set when the App opened the database itself
	db *sql.DB

	now func() time.Time

	// Service layer (business logic)
	PersonService     personservice.Service
	ChoreService      choreservice.Service
	AssignmentService assignmentservice.Service
	TaskService       taskservice.Service
}

// New creates a new App around an existing store. Every store call is
// logged through the configured logger.
func New(repo database.DataStore, opts ...Option) *App {
	cfg := newAppConfig(opts)

	logged := database.NewLoggingStore(repo, cfg.logger)

	return &App{
		repo:              logged,
		now:               cfg.now,
		PersonService:     personservice.NewService(logged),
		ChoreService:      choreservice.NewService(logged),
		AssignmentService: assignmentservice.NewService(logged),
		TaskService:       taskservice.NewService(logged, taskservice.WithClock(cfg.now)),
	}
}

// Open opens the SQLite database at path, applies the schema and returns
// an App backed by it. The caller must Close the App.
func Open(ctx context.Context, path string, opts ...Option) (*App, error) {
	cfg := newAppConfig(opts)

	var dbOpts []database.Option
	if cfg.assets != nil {
		dbOpts = append(dbOpts, database.WithAssets(cfg.assets))
	}

	db, err := database.InitDB(ctx, path, dbOpts...)
	if err != nil {
		return nil, err
	}

	a := New(database.NewRepository(db, dbOpts...), opts...)
	a.db = db
	return a, nil
}

// Repo returns the underlying repository for direct database access.
func (a *App) Repo() database.DataStore {
	return a.repo
}

// Now returns the current time according to the App clock
func (a *App) Now() time.Time {
	return a.now()
}

// Close releases the database connection if the App owns one.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}
