package database

import (
	"context"
	"database/sql"
	"io/fs"

	"github.com/thenoetrevino/chores/internal/models"
	"github.com/thenoetrevino/chores/internal/types"
)

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding.
type Repository struct {
	*PersonRepo
	*ChoreRepo
	*AssignmentRepo
	*TaskRepo
	*ScheduleRepo
}

// Option configures a Repository
type Option func(*repositoryOptions)

type repositoryOptions struct {
	assets fs.FS
}

// WithAssets makes the repository read its SQL queries from fsys instead of
// the scripts embedded in the binary.
func WithAssets(fsys fs.FS) Option {
	return func(o *repositoryOptions) {
		if fsys != nil {
			o.assets = fsys
		}
	}
}

func newRepositoryOptions(opts []Option) repositoryOptions {
	o := repositoryOptions{assets: EmbeddedAssets()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB, opts ...Option) *Repository {
	o := newRepositoryOptions(opts)

	return &Repository{
		PersonRepo:     &PersonRepo{db: db},
		ChoreRepo:      &ChoreRepo{db: db},
		AssignmentRepo: &AssignmentRepo{db: db},
		TaskRepo:       &TaskRepo{db: db},
		ScheduleRepo:   &ScheduleRepo{db: db, assets: o.assets},
	}
}

// Wrapper methods for PersonRepo
func (r *Repository) AddPerson(ctx context.Context, name string) (models.Person, error) {
	return r.PersonRepo.Create(ctx, name)
}

func (r *Repository) GetPersons(ctx context.Context) ([]models.Person, error) {
	return r.PersonRepo.GetAll(ctx)
}

func (r *Repository) RemovePerson(ctx context.Context, id types.PersonID) error {
	return r.PersonRepo.Delete(ctx, id)
}

// Wrapper methods for ChoreRepo
func (r *Repository) AddChore(ctx context.Context, description string, level, frequency uint8) (models.Chore, error) {
	return r.ChoreRepo.Create(ctx, description, level, frequency)
}

func (r *Repository) GetChores(ctx context.Context) ([]models.Chore, error) {
	return r.ChoreRepo.GetAll(ctx)
}

func (r *Repository) RemoveChore(ctx context.Context, id types.ChoreID) error {
	return r.ChoreRepo.Delete(ctx, id)
}

// Wrapper methods for AssignmentRepo
func (r *Repository) Assign(ctx context.Context, personID types.PersonID, choreID types.ChoreID) (models.Assignment, error) {
	return r.AssignmentRepo.Create(ctx, personID, choreID)
}

func (r *Repository) GetAssignments(ctx context.Context) ([]models.Assignment, error) {
	return r.AssignmentRepo.GetAll(ctx)
}

func (r *Repository) RemoveAssignment(ctx context.Context, id types.AssignmentID) error {
	return r.AssignmentRepo.Delete(ctx, id)
}

// Wrapper methods for TaskRepo
func (r *Repository) AddTask(ctx context.Context, personID types.PersonID, choreID types.ChoreID, date string) (models.Task, error) {
	return r.TaskRepo.Create(ctx, personID, choreID, date)
}

func (r *Repository) GetTasks(ctx context.Context) ([]models.Task, error) {
	return r.TaskRepo.GetAll(ctx)
}

func (r *Repository) GetSchedules(ctx context.Context) ([]models.Schedule, error) {
	return r.ScheduleRepo.GetAll(ctx)
}
