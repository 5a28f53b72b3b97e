package database

import (
	"context"
	"log/slog"
	"time"

	"github.com/thenoetrevino/chores/internal/models"
	"github.com/thenoetrevino/chores/internal/types"
)

// LoggingStore wraps a DataStore and logs every operation with its
// arguments, duration and error before returning the result unchanged.
type LoggingStore struct {
	next   DataStore
	logger *slog.Logger
}

// NewLoggingStore wraps next. A nil logger falls back to slog.Default().
func NewLoggingStore(next DataStore, logger *slog.Logger) *LoggingStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingStore{next: next, logger: logger}
}

// Unwrap returns the decorated store
func (s *LoggingStore) Unwrap() DataStore {
	return s.next
}

func (s *LoggingStore) log(ctx context.Context, op string, start time.Time, err error, args ...any) {
	attrs := append([]any{"op", op, "duration", time.Since(start)}, args...)
	if err != nil {
		s.logger.ErrorContext(ctx, "store operation failed", append(attrs, "error", err)...)
		return
	}
	s.logger.DebugContext(ctx, "store operation", attrs...)
}

func (s *LoggingStore) AddPerson(ctx context.Context, name string) (models.Person, error) {
	start := time.Now()
	p, err := s.next.AddPerson(ctx, name)
	s.log(ctx, "add_person", start, err, "name", name, "id", p.ID)
	return p, err
}

func (s *LoggingStore) GetPersons(ctx context.Context) ([]models.Person, error) {
	start := time.Now()
	persons, err := s.next.GetPersons(ctx)
	s.log(ctx, "get_persons", start, err, "count", len(persons))
	return persons, err
}

func (s *LoggingStore) RemovePerson(ctx context.Context, id types.PersonID) error {
	start := time.Now()
	err := s.next.RemovePerson(ctx, id)
	s.log(ctx, "remove_person", start, err, "id", id)
	return err
}

func (s *LoggingStore) AddChore(ctx context.Context, description string, level, frequency uint8) (models.Chore, error) {
	start := time.Now()
	c, err := s.next.AddChore(ctx, description, level, frequency)
	s.log(ctx, "add_chore", start, err, "description", description, "level", level, "frequency", frequency, "id", c.ID)
	return c, err
}

func (s *LoggingStore) GetChores(ctx context.Context) ([]models.Chore, error) {
	start := time.Now()
	chores, err := s.next.GetChores(ctx)
	s.log(ctx, "get_chores", start, err, "count", len(chores))
	return chores, err
}

func (s *LoggingStore) RemoveChore(ctx context.Context, id types.ChoreID) error {
	start := time.Now()
	err := s.next.RemoveChore(ctx, id)
	s.log(ctx, "remove_chore", start, err, "id", id)
	return err
}

func (s *LoggingStore) Assign(ctx context.Context, personID types.PersonID, choreID types.ChoreID) (models.Assignment, error) {
	start := time.Now()
	a, err := s.next.Assign(ctx, personID, choreID)
	s.log(ctx, "assign", start, err, "person_id", personID, "chore_id", choreID, "id", a.ID)
	return a, err
}

func (s *LoggingStore) GetAssignments(ctx context.Context) ([]models.Assignment, error) {
	start := time.Now()
	assignments, err := s.next.GetAssignments(ctx)
	s.log(ctx, "get_assignments", start, err, "count", len(assignments))
	return assignments, err
}

func (s *LoggingStore) RemoveAssignment(ctx context.Context, id types.AssignmentID) error {
	start := time.Now()
	err := s.next.RemoveAssignment(ctx, id)
	s.log(ctx, "remove_assignment", start, err, "id", id)
	return err
}

func (s *LoggingStore) AddTask(ctx context.Context, personID types.PersonID, choreID types.ChoreID, date string) (models.Task, error) {
	start := time.Now()
	t, err := s.next.AddTask(ctx, personID, choreID, date)
	s.log(ctx, "add_task", start, err, "person_id", personID, "chore_id", choreID, "date", date, "id", t.ID)
	return t, err
}

func (s *LoggingStore) GetTasks(ctx context.Context) ([]models.Task, error) {
	start := time.Now()
	tasks, err := s.next.GetTasks(ctx)
	s.log(ctx, "get_tasks", start, err, "count", len(tasks))
	return tasks, err
}

func (s *LoggingStore) GetSchedules(ctx context.Context) ([]models.Schedule, error) {
	start := time.Now()
	schedules, err := s.next.GetSchedules(ctx)
	s.log(ctx, "get_schedules", start, err, "count", len(schedules))
	return schedules, err
}
