package database

import (
	"context"
	"database/sql"

	"github.com/thenoetrevino/chores/internal/models"
	"github.com/thenoetrevino/chores/internal/types"
)

// PersonRepo handles data access for the person table
type PersonRepo struct {
	db *sql.DB
}

// Create inserts a person and returns it with its assigned id
func (r *PersonRepo) Create(ctx context.Context, name string) (models.Person, error) {
	result, err := r.db.ExecContext(ctx, `INSERT INTO person (name) VALUES (?)`, name)
	if err != nil {
		return models.Person{}, insertError("add_person", "person", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.Person{}, insertError("add_person", "person", err)
	}

	return models.Person{ID: types.PersonID(id), Name: name}, nil
}

// GetAll retrieves every person in id order
func (r *PersonRepo) GetAll(ctx context.Context) ([]models.Person, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM person ORDER BY id`)
	if err != nil {
		return nil, queryError("get_persons", "person", err)
	}
	defer closeRows(rows)

	persons := []models.Person{}
	for rows.Next() {
		var p models.Person
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, queryError("get_persons", "person", err)
		}
		persons = append(persons, p)
	}
	if err := rows.Err(); err != nil {
		return nil, queryError("get_persons", "person", err)
	}

	return persons, nil
}

// Delete removes a person (cascade removes their assignments and tasks).
// Deleting an id that does not exist is not an error.
func (r *PersonRepo) Delete(ctx context.Context, id types.PersonID) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM person WHERE id = ?`, id); err != nil {
		return deleteError("remove_person", "person", int64(id), err)
	}
	return nil
}
