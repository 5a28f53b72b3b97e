package assignment

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/thenoetrevino/chores/internal/database"
	"github.com/thenoetrevino/chores/internal/models"
	"github.com/thenoetrevino/chores/internal/services/validation"
	"github.com/thenoetrevino/chores/internal/types"
)

// Service defines all assignment-related business operations
type Service interface {
	ListAssignments(ctx context.Context) ([]models.Assignment, error)
	Assign(ctx context.Context, req AssignRequest) (models.Assignment, error)
	RemoveAssignment(ctx context.Context, id types.AssignmentID) error
}

// AssignRequest makes a person responsible for a chore
type AssignRequest struct {
	PersonID types.PersonID `validate:"gt=0"`
	ChoreID  types.ChoreID  `validate:"gt=0"`
}

type service struct {
	repo     database.AssignmentRepository
	validate *validator.Validate
}

// NewService creates a new assignment service
func NewService(repo database.AssignmentRepository) Service {
	return &service{repo: repo, validate: validation.New()}
}

func (s *service) ListAssignments(ctx context.Context) ([]models.Assignment, error) {
	return s.repo.GetAssignments(ctx)
}

func (s *service) Assign(ctx context.Context, req AssignRequest) (models.Assignment, error) {
	err := validation.Check(s.validate, req, map[string]error{
		"PersonID": ErrInvalidPersonID,
		"ChoreID":  ErrInvalidChoreID,
	})
	if err != nil {
		return models.Assignment{}, err
	}

	a, err := s.repo.Assign(ctx, req.PersonID, req.ChoreID)
	if err != nil {
		return models.Assignment{}, fmt.Errorf("failed to assign chore %d to person %d: %w", req.ChoreID, req.PersonID, err)
	}
	return a, nil
}

func (s *service) RemoveAssignment(ctx context.Context, id types.AssignmentID) error {
	if id <= 0 {
		return ErrInvalidID
	}
	if err := s.repo.RemoveAssignment(ctx, id); err != nil {
		return fmt.Errorf("failed to remove assignment: %w", err)
	}
	return nil
}
