package database

import (
	"context"
	"database/sql"

	"github.com/thenoetrevino/chores/internal/models"
	"github.com/thenoetrevino/chores/internal/types"
)

// TaskRepo handles data access for the task table (the completion log)
type TaskRepo struct {
	db *sql.DB
}

// Create records that a person did a chore on date (YYYY-MM-DD).
// The date is validated before anything is written.
func (r *TaskRepo) Create(ctx context.Context, personID types.PersonID, choreID types.ChoreID, date string) (models.Task, error) {
	if _, err := models.ParseDate(date); err != nil {
		return models.Task{}, parseError("add_task", err)
	}

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO task (person_id, chore_id, done) VALUES (?, ?, ?)`,
		personID, choreID, date,
	)
	if err != nil {
		return models.Task{}, insertError("add_task", "task", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.Task{}, insertError("add_task", "task", err)
	}

	return models.Task{
		ID:       types.TaskID(id),
		PersonID: personID,
		ChoreID:  choreID,
		Done:     date,
	}, nil
}

// GetAll retrieves the completion log in id order
func (r *TaskRepo) GetAll(ctx context.Context) ([]models.Task, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, person_id, chore_id, CAST(done AS TEXT) FROM task ORDER BY id`,
	)
	if err != nil {
		return nil, queryError("get_tasks", "task", err)
	}
	defer closeRows(rows)

	tasks := []models.Task{}
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(&t.ID, &t.PersonID, &t.ChoreID, &t.Done); err != nil {
			return nil, queryError("get_tasks", "task", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, queryError("get_tasks", "task", err)
	}

	return tasks, nil
}
