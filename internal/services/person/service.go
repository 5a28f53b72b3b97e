package person

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

// Service defines all person-related business operations
type Service interface {
	ListPersons(ctx context.Context) ([]models.Person, error)
	AddPerson(ctx context.Context, req AddPersonRequest) (models.Person, error)
	RemovePerson(ctx context.Context, id types.PersonID) error
}

// AddPersonRequest encapsulates data for adding a household member
type AddPersonRequest struct {
	Name string `validate:"required"`
}

type service struct {
	repo     database.PersonRepository
	validate *validator.Validate
}

// NewService creates a new person service
func NewService(repo database.PersonRepository) Service {
	return &service{repo: repo, validate: validation.New()}
}

func (s *service) ListPersons(ctx context.Context) ([]models.Person, error) {
	return s.repo.GetPersons(ctx)
}

// AddPerson trims and validates the name before storing it
func (s *service) AddPerson(ctx context.Context, req AddPersonRequest) (models.Person, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validation.Check(s.validate, req, map[string]error{"Name": ErrEmptyName}); err != nil {
		return models.Person{}, err
	}

	p, err := s.repo.AddPerson(ctx, req.Name)
	if err != nil {
		return models.Person{}, fmt.Errorf("failed to add person %q: %w", req.Name, err)
	}
	return p, nil
}

func (s *service) RemovePerson(ctx context.Context, id types.PersonID) error {
	if id <= 0 {
		return ErrInvalidID
	}
	if err := s.repo.RemovePerson(ctx, id); err != nil {
		return fmt.Errorf("failed to remove person: %w", err)
	}
	return nil
}
