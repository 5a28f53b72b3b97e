package task

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/thenoetrevino/chores/internal/database"
	"github.com/thenoetrevino/chores/internal/models"
	"github.com/thenoetrevino/chores/internal/services/validation"
	"github.com/thenoetrevino/chores/internal/types"
)

// Store is the part of the DataStore the task service needs
type Store interface {
	database.TaskRepository
	database.ScheduleRepository
}

// Service defines completion log and schedule operations
type Service interface {
	// Read operations
	ListTasks(ctx context.Context) ([]models.Task, error)
	ListSchedules(ctx context.Context) ([]models.Schedule, error)
	ListOverdue(ctx context.Context) ([]models.Schedule, error)

	// Write operations
	RecordTask(ctx context.Context, req RecordTaskRequest) (models.Task, error)
}

// RecordTaskRequest records that a person did a chore.
// An empty Date means today.
type RecordTaskRequest struct {
	PersonID types.PersonID `validate:"gt=0"`
	ChoreID  types.ChoreID  `validate:"gt=0"`
	Date     string
}

// Option configures the task service
type Option func(*service)

// WithClock overrides the source of "today"
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		s.now = now
	}
}

type service struct {
	repo     Store
	validate *validator.Validate
	now      func() time.Time
}

// NewService creates a new task service
func NewService(repo Store, opts ...Option) Service {
	s := &service{repo: repo, validate: validation.New(), now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) ListTasks(ctx context.Context) ([]models.Task, error) {
	return s.repo.GetTasks(ctx)
}

func (s *service) ListSchedules(ctx context.Context) ([]models.Schedule, error) {
	return s.repo.GetSchedules(ctx)
}

// ListOverdue returns the schedules whose next due date is before today
func (s *service) ListOverdue(ctx context.Context) ([]models.Schedule, error) {
	schedules, err := s.repo.GetSchedules(ctx)
	if err != nil {
		return nil, err
	}

	today := s.now()
	overdue := []models.Schedule{}
	for _, sch := range schedules {
		if sch.Overdue(today) {
			overdue = append(overdue, sch)
		}
	}
	return overdue, nil
}

// today returns the current civil date according to the service clock
func (s *service) today() string {
	return models.FormatDate(models.CivilDay(s.now()))
}

func (s *service) RecordTask(ctx context.Context, req RecordTaskRequest) (models.Task, error) {
	err := validation.Check(s.validate, req, map[string]error{
		"PersonID": ErrInvalidPersonID,
		"ChoreID":  ErrInvalidChoreID,
	})
	if err != nil {
		return models.Task{}, err
	}

	if req.Date == "" {
		req.Date = s.today()
	}

	t, err := s.repo.AddTask(ctx, req.PersonID, req.ChoreID, req.Date)
	if err != nil {
		return models.Task{}, fmt.Errorf("failed to record task: %w", err)
	}
	return t, nil
}
