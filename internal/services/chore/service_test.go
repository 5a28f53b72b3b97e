package chore

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/chores/internal/database"
	"github.com/thenoetrevino/chores/internal/models"
)

func TestAddChore(t *testing.T) {
	t.Parallel()
	svc := NewService(database.NewMemoryStore())
	ctx := context.Background()

	c, err := svc.AddChore(ctx, AddChoreRequest{Description: " dishes", Level: 2, Frequency: 3})
	require.NoError(t, err)
	assert.Equal(t, models.Chore{ID: 1, Description: "dishes", Level: 2, Frequency: 3}, c)

	chores, err := svc.ListChores(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Chore{c}, chores)
}

func TestAddChore_Validation(t *testing.T) {
	t.Parallel()
	svc := NewService(database.NewMemoryStore())

	_, err := svc.AddChore(context.Background(), AddChoreRequest{Description: "  ", Frequency: 1})
	assert.Equal(t, ErrEmptyDescription, err)
}

func TestAddChore_Duplicate(t *testing.T) {
	t.Parallel()
	svc := NewService(database.NewMemoryStore())
	ctx := context.Background()

	_, err := svc.AddChore(ctx, AddChoreRequest{Description: "dishes"})
	require.NoError(t, err)
	_, err = svc.AddChore(ctx, AddChoreRequest{Description: "dishes", Frequency: 9})
	assert.True(t, errors.Is(err, database.ErrInsert))
}

func TestRemoveChore(t *testing.T) {
	t.Parallel()
	svc := NewService(database.NewMemoryStore())
	ctx := context.Background()

	assert.Equal(t, ErrInvalidID, svc.RemoveChore(ctx, 0))

	c, err := svc.AddChore(ctx, AddChoreRequest{Description: "dishes"})
	require.NoError(t, err)
	require.NoError(t, svc.RemoveChore(ctx, c.ID))

	chores, err := svc.ListChores(ctx)
	require.NoError(t, err)
	assert.Empty(t, chores)
}
