package chore

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/thenoetrevino/chores/internal/database"
	"github.com/thenoetrevino/chores/internal/models"
	"github.com/thenoetrevino/chores/internal/services/validation"
	"github.com/thenoetrevino/chores/internal/types"
)

// Service defines all chore-related business operations
type Service interface {
	ListChores(ctx context.Context) ([]models.Chore, error)
	AddChore(ctx context.Context, req AddChoreRequest) (models.Chore, error)
	RemoveChore(ctx context.Context, id types.ChoreID) error
}

// AddChoreRequest encapsulates data for adding a chore.
// Level and Frequency are already bounded to 0-255 by their type.
type AddChoreRequest struct {
	Description string `validate:"required"`
	Level       uint8
	Frequency   uint8
}

type service struct {
	repo     database.ChoreRepository
	validate *validator.Validate
}

// NewService creates a new chore service
func NewService(repo database.ChoreRepository) Service {
	return &service{repo: repo, validate: validation.New()}
}

func (s *service) ListChores(ctx context.Context) ([]models.Chore, error) {
	return s.repo.GetChores(ctx)
}

func (s *service) AddChore(ctx context.Context, req AddChoreRequest) (models.Chore, error) {
	req.Description = strings.TrimSpace(req.Description)
	if err := validation.Check(s.validate, req, map[string]error{"Description": ErrEmptyDescription}); err != nil {
		return models.Chore{}, err
	}

	c, err := s.repo.AddChore(ctx, req.Description, req.Level, req.Frequency)
	if err != nil {
		return models.Chore{}, fmt.Errorf("failed to add chore %q: %w", req.Description, err)
	}
	return c, nil
}

func (s *service) RemoveChore(ctx context.Context, id types.ChoreID) error {
	if id <= 0 {
		return ErrInvalidID
	}
	if err := s.repo.RemoveChore(ctx, id); err != nil {
		return fmt.Errorf("failed to remove chore: %w", err)
	}
	return nil
}
