package board

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/chores/internal/database"
	"github.com/thenoetrevino/chores/internal/models"
	taskservice "github.com/thenoetrevino/chores/internal/services/task"
)

var today = time.Date(2024, time.January, 14, 9, 0, 0, 0, time.UTC)

func clock() time.Time { return today }

func setupBoard(t *testing.T) (Model, *database.MemoryStore) {
	t.Helper()
	ctx := context.Background()
	store := database.NewMemoryStore()

	anna, err := store.AddPerson(ctx, "anna")
	require.NoError(t, err)
	bob, err := store.AddPerson(ctx, "bob")
	require.NoError(t, err)
	dishes, err := store.AddChore(ctx, "dishes", 2, 3)
	require.NoError(t, err)
	vacuum, err := store.AddChore(ctx, "vacuum", 1, 7)
	require.NoError(t, err)

	_, err = store.Assign(ctx, anna.ID, dishes.ID)
	require.NoError(t, err)
	_, err = store.Assign(ctx, bob.ID, vacuum.ID)
	require.NoError(t, err)
	_, err = store.AddTask(ctx, anna.ID, dishes.ID, "2024-01-10")
	require.NoError(t, err)

	m := New(ctx, taskservice.NewService(store, taskservice.WithClock(clock)), clock)
	return run(t, m, m.Init()), store
}

// run feeds the message produced by cmd back into the model
func run(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	require.NotNil(t, cmd)
	updated, next := m.Update(cmd())
	m = updated.(Model)
	if next != nil {
		return run(t, m, next)
	}
	return m
}

func press(m Model, k tea.Key) (Model, tea.Cmd) {
	updated, cmd := m.Update(tea.KeyPressMsg(k))
	return updated.(Model), cmd
}

func TestBoard_Loads(t *testing.T) {
	m, _ := setupBoard(t)

	out := m.Render()
	assert.Contains(t, out, "Chores · 2024-01-14")
	assert.Contains(t, out, "anna")
	assert.Contains(t, out, "2024-01-13")
	assert.Contains(t, out, models.Unknown)
}

func TestBoard_Navigation(t *testing.T) {
	m, _ := setupBoard(t)
	assert.Equal(t, 0, m.Cursor())

	m, _ = press(m, tea.Key{Text: "j", Code: 'j'})
	assert.Equal(t, 1, m.Cursor())

	m, _ = press(m, tea.Key{Code: tea.KeyDown})
	assert.Equal(t, 1, m.Cursor(), "cursor stops at the last row")

	m, _ = press(m, tea.Key{Code: tea.KeyUp})
	assert.Equal(t, 0, m.Cursor())

	m, _ = press(m, tea.Key{Text: "k", Code: 'k'})
	assert.Equal(t, 0, m.Cursor(), "cursor stops at the first row")
}

func TestBoard_MarkDone(t *testing.T) {
	m, store := setupBoard(t)

	m, _ = press(m, tea.Key{Text: "j", Code: 'j'})
	m, cmd := press(m, tea.Key{Text: "d", Code: 'd'})
	m = run(t, m, cmd)

	assert.Equal(t, "✓ bob did vacuum on 2024-01-14", m.Status())

	row, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "2024-01-14", row.Last)
	assert.Equal(t, "2024-01-21", row.Next)

	tasks, err := store.GetTasks(context.Background())
	require.NoError(t, err)
	assert.Len(t, tasks, 2)
}

func TestBoard_Reload(t *testing.T) {
	m, store := setupBoard(t)

	ctx := context.Background()
	carl, err := store.AddPerson(ctx, "carl")
	require.NoError(t, err)
	_, err = store.Assign(ctx, carl.ID, 1)
	require.NoError(t, err)

	m, cmd := press(m, tea.Key{Text: "r", Code: 'r'})
	m = run(t, m, cmd)
	assert.Contains(t, m.Render(), "carl")
}

func TestBoard_Quit(t *testing.T) {
	m, _ := setupBoard(t)

	_, cmd := press(m, tea.Key{Text: "q", Code: 'q'})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestBoard_DoneOnEmptyBoard(t *testing.T) {
	m := New(context.Background(), taskservice.NewService(database.NewMemoryStore()), clock)
	m = run(t, m, m.Init())

	_, cmd := press(m, tea.Key{Text: "d", Code: 'd'})
	assert.Nil(t, cmd)
	assert.Contains(t, m.Render(), "No assigned chores")
}

func TestBoard_ShowsErrors(t *testing.T) {
	m, _ := setupBoard(t)

	updated, _ := m.Update(taskRecordedMsg{err: errors.New("database is locked")})
	m = updated.(Model)
	assert.Equal(t, "❌ database is locked", m.Status())
}
