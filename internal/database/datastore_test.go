package database

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/chores/internal/models"
)

// ============================================================================
// END-TO-END SCENARIOS
// ============================================================================

func TestScenarios(t *testing.T) {
	t.Parallel()
	forEachStore(t, func(t *testing.T, store DataStore) {
		ctx := context.Background()

		// 1. add a person to a fresh store
		_, err := store.AddPerson(ctx, "anna")
		require.NoError(t, err)
		persons, err := store.GetPersons(ctx)
		require.NoError(t, err)
		assert.Equal(t, []models.Person{{ID: 1, Name: "anna"}}, persons)

		// 2. add a chore
		_, err = store.AddChore(ctx, "dishes", 2, 3)
		require.NoError(t, err)
		chores, err := store.GetChores(ctx)
		require.NoError(t, err)
		assert.Equal(t, []models.Chore{{ID: 1, Description: "dishes", Level: 2, Frequency: 3}}, chores)

		// 3. assign it
		_, err = store.Assign(ctx, 1, 1)
		require.NoError(t, err)
		assignments, err := store.GetAssignments(ctx)
		require.NoError(t, err)
		assert.Equal(t, []models.Assignment{{ID: 1, PersonID: 1, ChoreID: 1}}, assignments)

		// 4. record a completion
		_, err = store.AddTask(ctx, 1, 1, "2024-01-10")
		require.NoError(t, err)
		schedules, err := store.GetSchedules(ctx)
		require.NoError(t, err)
		expected := []models.Schedule{{
			PersonID:    1,
			ChoreID:     1,
			Name:        "anna",
			Description: "dishes",
			Level:       2,
			Frequency:   3,
			Last:        "2024-01-10",
			Next:        "2024-01-13",
		}}
		assert.Equal(t, expected, schedules)

		// 5. an invalid date is rejected and changes nothing
		_, err = store.AddTask(ctx, 1, 1, "2024-13-40")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrParse))
		schedules, err = store.GetSchedules(ctx)
		require.NoError(t, err)
		assert.Equal(t, expected, schedules)

		// 6. removing the person cascades
		require.NoError(t, store.RemovePerson(ctx, 1))
		assignments, err = store.GetAssignments(ctx)
		require.NoError(t, err)
		assert.Empty(t, assignments)
		tasks, err := store.GetTasks(ctx)
		require.NoError(t, err)
		for _, task := range tasks {
			assert.NotEqual(t, 1, int(task.PersonID))
		}
	})
}

// ============================================================================
// INVARIANTS
// ============================================================================

func TestUniqueness(t *testing.T) {
	t.Parallel()
	forEachStore(t, func(t *testing.T, store DataStore) {
		ctx := context.Background()

		_, err := store.AddPerson(ctx, "anna")
		require.NoError(t, err)
		_, err = store.AddPerson(ctx, "anna")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInsert))
		assert.Contains(t, err.Error(), "person")

		_, err = store.AddChore(ctx, "dishes", 1, 1)
		require.NoError(t, err)
		_, err = store.AddChore(ctx, "dishes", 5, 7)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInsert))

		persons, err := store.GetPersons(ctx)
		require.NoError(t, err)
		assert.Len(t, persons, 1)
		chores, err := store.GetChores(ctx)
		require.NoError(t, err)
		assert.Len(t, chores, 1)
	})
}

func TestEmptyNamesRejected(t *testing.T) {
	t.Parallel()
	forEachStore(t, func(t *testing.T, store DataStore) {
		ctx := context.Background()

		_, err := store.AddPerson(ctx, "")
		assert.True(t, errors.Is(err, ErrInsert))
		_, err = store.AddChore(ctx, "", 1, 1)
		assert.True(t, errors.Is(err, ErrInsert))
	})
}

func TestDanglingReferences(t *testing.T) {
	t.Parallel()
	forEachStore(t, func(t *testing.T, store DataStore) {
		ctx := context.Background()
		_, err := store.AddPerson(ctx, "anna")
		require.NoError(t, err)

		_, err = store.Assign(ctx, 1, 99)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInsert))

		_, err = store.AddTask(ctx, 42, 1, "2024-01-10")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInsert))

		assignments, err := store.GetAssignments(ctx)
		require.NoError(t, err)
		assert.Empty(t, assignments)
	})
}

func TestCascadeOnChoreRemoval(t *testing.T) {
	t.Parallel()
	forEachStore(t, func(t *testing.T, store DataStore) {
		ctx := context.Background()
		seedHousehold(t, store)
		_, err := store.AddChore(ctx, "laundry", 1, 7)
		require.NoError(t, err)
		_, err = store.Assign(ctx, 1, 2)
		require.NoError(t, err)
		_, err = store.AddTask(ctx, 1, 1, "2024-01-10")
		require.NoError(t, err)
		_, err = store.AddTask(ctx, 1, 2, "2024-01-11")
		require.NoError(t, err)

		require.NoError(t, store.RemoveChore(ctx, 1))

		assignments, err := store.GetAssignments(ctx)
		require.NoError(t, err)
		require.Len(t, assignments, 1)
		assert.Equal(t, 2, int(assignments[0].ChoreID))

		tasks, err := store.GetTasks(ctx)
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.Equal(t, 2, int(tasks[0].ChoreID))

		persons, err := store.GetPersons(ctx)
		require.NoError(t, err)
		assert.Len(t, persons, 1, "removing a chore keeps the person")
	})
}

func TestRemoveAssignmentKeepsTasks(t *testing.T) {
	t.Parallel()
	forEachStore(t, func(t *testing.T, store DataStore) {
		ctx := context.Background()
		seedHousehold(t, store)
		_, err := store.AddTask(ctx, 1, 1, "2024-01-10")
		require.NoError(t, err)

		require.NoError(t, store.RemoveAssignment(ctx, 1))

		schedules, err := store.GetSchedules(ctx)
		require.NoError(t, err)
		assert.Empty(t, schedules)
		tasks, err := store.GetTasks(ctx)
		require.NoError(t, err)
		assert.Len(t, tasks, 1)
	})
}

func TestRemoveMissingIsNotAnError(t *testing.T) {
	t.Parallel()
	forEachStore(t, func(t *testing.T, store DataStore) {
		ctx := context.Background()
		assert.NoError(t, store.RemovePerson(ctx, 255))
		assert.NoError(t, store.RemoveChore(ctx, 1000))
		assert.NoError(t, store.RemoveAssignment(ctx, 7))
	})
}

func TestIDsAreNotReused(t *testing.T) {
	t.Parallel()
	forEachStore(t, func(t *testing.T, store DataStore) {
		ctx := context.Background()
		first, err := store.AddPerson(ctx, "anna")
		require.NoError(t, err)
		require.NoError(t, store.RemovePerson(ctx, first.ID))

		second, err := store.AddPerson(ctx, "anna")
		require.NoError(t, err)
		assert.Greater(t, int64(second.ID), int64(first.ID))
	})
}

func TestRoundTripOrdering(t *testing.T) {
	t.Parallel()
	forEachStore(t, func(t *testing.T, store DataStore) {
		ctx := context.Background()
		names := []string{"carl", "anna", "bob"}
		for _, name := range names {
			_, err := store.AddPerson(ctx, name)
			require.NoError(t, err)
		}

		persons, err := store.GetPersons(ctx)
		require.NoError(t, err)
		require.Len(t, persons, 3)
		for i, p := range persons {
			assert.Equal(t, int64(i+1), int64(p.ID), "persons are listed by id")
			assert.Equal(t, names[i], p.Name)
		}

		chore, err := store.AddChore(ctx, "vacuum", 255, 255)
		require.NoError(t, err)
		chores, err := store.GetChores(ctx)
		require.NoError(t, err)
		assert.Equal(t, []models.Chore{chore}, chores)
	})
}

// ============================================================================
// DATES AND SCHEDULES
// ============================================================================

func TestAddTaskStoresLiteralDate(t *testing.T) {
	t.Parallel()
	forEachStore(t, func(t *testing.T, store DataStore) {
		ctx := context.Background()
		seedHousehold(t, store)

		for _, date := range []string{"2024-02-29", "1999-12-31", "2024-01-01"} {
			task, err := store.AddTask(ctx, 1, 1, date)
			require.NoError(t, err)
			assert.Equal(t, date, task.Done)
		}

		tasks, err := store.GetTasks(ctx)
		require.NoError(t, err)
		require.Len(t, tasks, 3)
		assert.Equal(t, "2024-02-29", tasks[0].Done)
		assert.Equal(t, "1999-12-31", tasks[1].Done)
		assert.Equal(t, "2024-01-01", tasks[2].Done)
	})
}

func TestAddTaskRejectsInvalidDates(t *testing.T) {
	t.Parallel()
	forEachStore(t, func(t *testing.T, store DataStore) {
		ctx := context.Background()
		seedHousehold(t, store)

		for _, date := range []string{"2023-02-29", "2024-1-10", "2024-01-10 12:00:00", "yesterday", ""} {
			_, err := store.AddTask(ctx, 1, 1, date)
			require.Error(t, err, date)
			assert.True(t, errors.Is(err, ErrParse), date)
			assert.True(t, errors.Is(err, models.ErrInvalidDate), date)
		}

		tasks, err := store.GetTasks(ctx)
		require.NoError(t, err)
		assert.Empty(t, tasks)
	})
}

func TestScheduleNeverDone(t *testing.T) {
	t.Parallel()
	forEachStore(t, func(t *testing.T, store DataStore) {
		seedHousehold(t, store)

		schedules, err := store.GetSchedules(context.Background())
		require.NoError(t, err)
		require.Len(t, schedules, 1)
		assert.Equal(t, models.Unknown, schedules[0].Last)
		assert.Equal(t, models.Unknown, schedules[0].Next)
	})
}

func TestScheduleUsesLatestDate(t *testing.T) {
	t.Parallel()
	forEachStore(t, func(t *testing.T, store DataStore) {
		ctx := context.Background()
		seedHousehold(t, store)

		// inserted out of chronological order. Schedule rows carry no task id,
		// so the tie between the two 2024-02-01 rows is asserted in
		// TestScheduleLatestPrefersLargerTaskID.
		for _, date := range []string{"2024-01-10", "2024-02-01", "2024-01-20", "2024-02-01"} {
			_, err := store.AddTask(ctx, 1, 1, date)
			require.NoError(t, err)
		}

		schedules, err := store.GetSchedules(ctx)
		require.NoError(t, err)
		require.Len(t, schedules, 1)
		assert.Equal(t, "2024-02-01", schedules[0].Last)
		assert.Equal(t, "2024-02-04", schedules[0].Next)
	})
}

func TestScheduleRowsPerAssignedPair(t *testing.T) {
	t.Parallel()
	forEachStore(t, func(t *testing.T, store DataStore) {
		ctx := context.Background()
		seedHousehold(t, store)
		_, err := store.AddPerson(ctx, "bob")
		require.NoError(t, err)
		_, err = store.AddChore(ctx, "laundry", 1, 7)
		require.NoError(t, err)

		// assigned out of order, with a duplicate
		_, err = store.Assign(ctx, 2, 2)
		require.NoError(t, err)
		_, err = store.Assign(ctx, 2, 1)
		require.NoError(t, err)
		_, err = store.Assign(ctx, 1, 1)
		require.NoError(t, err)

		// bob did laundry; anna did laundry without being assigned it
		_, err = store.AddTask(ctx, 2, 2, "2024-03-01")
		require.NoError(t, err)
		_, err = store.AddTask(ctx, 1, 2, "2024-03-05")
		require.NoError(t, err)

		schedules, err := store.GetSchedules(ctx)
		require.NoError(t, err)
		require.Len(t, schedules, 3)

		assert.Equal(t, "anna", schedules[0].Name)
		assert.Equal(t, "dishes", schedules[0].Description)
		assert.Equal(t, models.Unknown, schedules[0].Last)

		assert.Equal(t, "bob", schedules[1].Name)
		assert.Equal(t, "dishes", schedules[1].Description)
		assert.Equal(t, models.Unknown, schedules[1].Last)

		assert.Equal(t, "bob", schedules[2].Name)
		assert.Equal(t, "laundry", schedules[2].Description)
		assert.Equal(t, "2024-03-01", schedules[2].Last)
		assert.Equal(t, "2024-03-08", schedules[2].Next)
	})
}

func TestScheduleZeroFrequency(t *testing.T) {
	t.Parallel()
	forEachStore(t, func(t *testing.T, store DataStore) {
		ctx := context.Background()
		_, err := store.AddPerson(ctx, "anna")
		require.NoError(t, err)
		_, err = store.AddChore(ctx, "plants", 0, 0)
		require.NoError(t, err)
		_, err = store.Assign(ctx, 1, 1)
		require.NoError(t, err)
		_, err = store.AddTask(ctx, 1, 1, "2024-12-31")
		require.NoError(t, err)

		schedules, err := store.GetSchedules(ctx)
		require.NoError(t, err)
		require.Len(t, schedules, 1)
		assert.Equal(t, "2024-12-31", schedules[0].Next)
	})
}
