package database

import (
	"context"
	"database/sql"

	"github.com/thenoetrevino/chores/internal/models"
	"github.com/thenoetrevino/chores/internal/types"
)

// ChoreRepo handles data access for the chore table
type ChoreRepo struct {
	db *sql.DB
}

// Create inserts a chore and returns it with its assigned id
func (r *ChoreRepo) Create(ctx context.Context, description string, level, frequency uint8) (models.Chore, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO chore (description, level, frequency) VALUES (?, ?, ?)`,
		description, level, frequency,
	)
	if err != nil {
		return models.Chore{}, insertError("add_chore", "chore", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.Chore{}, insertError("add_chore", "chore", err)
	}

	return models.Chore{
		ID:          types.ChoreID(id),
		Description: description,
		Level:       level,
		Frequency:   frequency,
	}, nil
}

// GetAll retrieves every chore in id order
func (r *ChoreRepo) GetAll(ctx context.Context) ([]models.Chore, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, description, level, frequency FROM chore ORDER BY id`)
	if err != nil {
		return nil, queryError("get_chores", "chore", err)
	}
	defer closeRows(rows)

	chores := []models.Chore{}
	for rows.Next() {
		var c models.Chore
		if err := rows.Scan(&c.ID, &c.Description, &c.Level, &c.Frequency); err != nil {
			return nil, queryError("get_chores", "chore", err)
		}
		chores = append(chores, c)
	}
	if err := rows.Err(); err != nil {
		return nil, queryError("get_chores", "chore", err)
	}

	return chores, nil
}

// Delete removes a chore (cascade removes its assignments and tasks)
func (r *ChoreRepo) Delete(ctx context.Context, id types.ChoreID) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM chore WHERE id = ?`, id); err != nil {
		return deleteError("remove_chore", "chore", int64(id), err)
	}
	return nil
}
