package assignment

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/chores/internal/cli"
	"github.com/thenoetrevino/chores/internal/database"
	"github.com/thenoetrevino/chores/internal/testutil"
	cliutil "github.com/thenoetrevino/chores/internal/testutil/cli"
)

func TestAddAssignment(t *testing.T) {
	t.Run("Links person and chore", func(t *testing.T) {
		db, app := cliutil.SetupCLITest(t)
		testutil.CreateTestPerson(t, db, "anna")
		testutil.CreateTestChore(t, db, "dishes", 1, 3)

		out, err := cliutil.ExecuteCLICommand(t, app, AssignmentCmd(), []string{"add", "-p", "1", "-c", "1"})
		require.NoError(t, err)
		assert.Contains(t, out, "Assigned chore 1 to person 1 (id:0001)")
	})

	t.Run("JSON carries the row", func(t *testing.T) {
		db, app := cliutil.SetupCLITest(t)
		testutil.CreateTestPerson(t, db, "anna")
		testutil.CreateTestChore(t, db, "dishes", 1, 3)

		out, err := cliutil.ExecuteCLICommand(t, app, AssignmentCmd(), []string{"add", "-p", "1", "-c", "1", "--json"})
		require.NoError(t, err)
		data := testutil.ParseJSON(t, out)["data"].(map[string]any)
		assert.Equal(t, float64(1), data["person_id"])
		assert.Equal(t, float64(1), data["chore_id"])
	})

	t.Run("Unknown person is a data error", func(t *testing.T) {
		db, app := cliutil.SetupCLITest(t)
		testutil.CreateTestChore(t, db, "dishes", 1, 3)

		_, err := cliutil.ExecuteCLICommand(t, app, AssignmentCmd(), []string{"add", "-p", "9", "-c", "1"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, database.ErrInsert))
		assert.Equal(t, cli.ExitDataErr, cli.ExitCode(err))
	})

	t.Run("Zero id is a validation error", func(t *testing.T) {
		_, app := cliutil.SetupCLITest(t)

		_, err := cliutil.ExecuteCLICommand(t, app, AssignmentCmd(), []string{"add", "-p", "0", "-c", "1"})
		require.Error(t, err)
		assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
	})
}

func TestRemoveAssignment_KeepsTasks(t *testing.T) {
	db, app := cliutil.SetupCLITest(t)
	p := testutil.CreateTestPerson(t, db, "anna")
	c := testutil.CreateTestChore(t, db, "dishes", 1, 3)
	id := testutil.CreateTestAssignment(t, db, p, c)
	testutil.CreateTestTask(t, db, p, c, "2024-01-10")

	_, err := cliutil.ExecuteCLICommand(t, app, AssignmentCmd(), []string{"remove", "-i", "1"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, id)

	tasks, err := app.TaskService.ListTasks(context.Background())
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}

func TestListAssignments_ShowsNames(t *testing.T) {
	db, app := cliutil.SetupCLITest(t)
	p := testutil.CreateTestPerson(t, db, "anna")
	c := testutil.CreateTestChore(t, db, "dishes", 1, 3)
	testutil.CreateTestAssignment(t, db, p, c)

	out, err := cliutil.ExecuteCLICommand(t, app, AssignmentCmd(), []string{"list"})
	require.NoError(t, err)
	assert.Contains(t, out, "anna")
	assert.Contains(t, out, "dishes")

	out, err = cliutil.ExecuteCLICommand(t, app, AssignmentCmd(), []string{"list", "--json"})
	require.NoError(t, err)
	rows := testutil.ParseJSON(t, out)["data"].([]any)
	require.Len(t, rows, 1)
	assert.Equal(t, float64(1), rows[0].(map[string]any)["id"])
}
