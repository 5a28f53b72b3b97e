package database

import (
	"context"

	"github.com/thenoetrevino/chores/internal/models"
	"github.com/thenoetrevino/chores/internal/types"
)

// PersonReader defines read operations for persons.
type PersonReader interface {
	GetPersons(ctx context.Context) ([]models.Person, error)
}

// PersonWriter defines write operations for persons.
type PersonWriter interface {
	AddPerson(ctx context.Context, name string) (models.Person, error)
	RemovePerson(ctx context.Context, id types.PersonID) error
}

// PersonRepository combines all person-related operations.
type PersonRepository interface {
	PersonReader
	PersonWriter
}

// ChoreReader defines read operations for chores.
type ChoreReader interface {
	GetChores(ctx context.Context) ([]models.Chore, error)
}

// ChoreWriter defines write operations for chores.
type ChoreWriter interface {
	AddChore(ctx context.Context, description string, level, frequency uint8) (models.Chore, error)
	RemoveChore(ctx context.Context, id types.ChoreID) error
}

// ChoreRepository combines all chore-related operations.
type ChoreRepository interface {
	ChoreReader
	ChoreWriter
}

// AssignmentReader defines read operations for assignments.
type AssignmentReader interface {
	GetAssignments(ctx context.Context) ([]models.Assignment, error)
}

// AssignmentWriter defines write operations for assignments.
type AssignmentWriter interface {
	Assign(ctx context.Context, personID types.PersonID, choreID types.ChoreID) (models.Assignment, error)
	RemoveAssignment(ctx context.Context, id types.AssignmentID) error
}

// AssignmentRepository combines all assignment-related operations.
type AssignmentRepository interface {
	AssignmentReader
	AssignmentWriter
}

// TaskReader defines read operations for the completion log.
type TaskReader interface {
	GetTasks(ctx context.Context) ([]models.Task, error)
}

// TaskWriter defines write operations for the completion log.
type TaskWriter interface {
	AddTask(ctx context.Context, personID types.PersonID, choreID types.ChoreID, date string) (models.Task, error)
}

// TaskRepository combines all task-related operations.
type TaskRepository interface {
	TaskReader
	TaskWriter
}

// ScheduleRepository derives the per-assignment schedule.
type ScheduleRepository interface {
	GetSchedules(ctx context.Context) ([]models.Schedule, error)
}
