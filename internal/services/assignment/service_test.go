package assignment

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/chores/internal/database"
)

func TestAssign(t *testing.T) {
	t.Parallel()
	store := database.NewMemoryStore()
	ctx := context.Background()
	_, err := store.AddPerson(ctx, "anna")
	require.NoError(t, err)
	_, err = store.AddChore(ctx, "dishes", 2, 3)
	require.NoError(t, err)

	svc := NewService(store)
	a, err := svc.Assign(ctx, AssignRequest{PersonID: 1, ChoreID: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(1), a.GetID())

	_, err = svc.Assign(ctx, AssignRequest{PersonID: 1, ChoreID: 2})
	assert.True(t, errors.Is(err, database.ErrInsert), "dangling chore reference")

	assignments, err := svc.ListAssignments(ctx)
	require.NoError(t, err)
	assert.Len(t, assignments, 1)
}

func TestAssign_Validation(t *testing.T) {
	t.Parallel()
	svc := NewService(database.NewMemoryStore())
	ctx := context.Background()

	_, err := svc.Assign(ctx, AssignRequest{PersonID: 0, ChoreID: 1})
	assert.Equal(t, ErrInvalidPersonID, err)
	_, err = svc.Assign(ctx, AssignRequest{PersonID: 1, ChoreID: -1})
	assert.Equal(t, ErrInvalidChoreID, err)
}

func TestRemoveAssignment(t *testing.T) {
	t.Parallel()
	svc := NewService(database.NewMemoryStore())

	assert.Equal(t, ErrInvalidID, svc.RemoveAssignment(context.Background(), 0))
	assert.NoError(t, svc.RemoveAssignment(context.Background(), 3))
}
