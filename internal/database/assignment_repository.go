package database

import (
	"context"
	"database/sql"

	"github.com/thenoetrevino/chores/internal/models"
	"github.com/thenoetrevino/chores/internal/types"
)

// AssignmentRepo handles data access for the assignment table
type AssignmentRepo struct {
	db *sql.DB
}

// Create links a person to a chore. Both must exist.
func (r *AssignmentRepo) Create(ctx context.Context, personID types.PersonID, choreID types.ChoreID) (models.Assignment, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO assignment (person_id, chore_id) VALUES (?, ?)`,
		personID, choreID,
	)
	if err != nil {
		return models.Assignment{}, insertError("assign", "assignment", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.Assignment{}, insertError("assign", "assignment", err)
	}

	return models.Assignment{
		ID:       types.AssignmentID(id),
		PersonID: personID,
		ChoreID:  choreID,
	}, nil
}

// GetAll retrieves every assignment in id order
func (r *AssignmentRepo) GetAll(ctx context.Context) ([]models.Assignment, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, person_id, chore_id FROM assignment ORDER BY id`)
	if err != nil {
		return nil, queryError("get_assignments", "assignment", err)
	}
	defer closeRows(rows)

	assignments := []models.Assignment{}
	for rows.Next() {
		var a models.Assignment
		if err := rows.Scan(&a.ID, &a.PersonID, &a.ChoreID); err != nil {
			return nil, queryError("get_assignments", "assignment", err)
		}
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, queryError("get_assignments", "assignment", err)
	}

	return assignments, nil
}

// Delete removes a single assignment; the completion log is kept
func (r *AssignmentRepo) Delete(ctx context.Context, id types.AssignmentID) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM assignment WHERE id = ?`, id); err != nil {
		return deleteError("remove_assignment", "assignment", int64(id), err)
	}
	return nil
}
