package database

import (
	"context"
	"database/sql"
	"io/fs"

	"github.com/thenoetrevino/chores/internal/models"
	"github.com/thenoetrevino/chores/internal/types"
)

// ScheduleRepo derives schedules from assignments and the completion log.
// The query text is loaded from assets on every call.
type ScheduleRepo struct {
	db     *sql.DB
	assets fs.FS
}

// GetAll returns one schedule per assigned (person, chore) pair, ordered by
// person id then chore id
func (r *ScheduleRepo) GetAll(ctx context.Context) ([]models.Schedule, error) {
	query, err := readAsset(r.assets, scheduleAsset)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, queryError("get_schedules", "schedule", err)
	}
	defer closeRows(rows)

	schedules := []models.Schedule{}
	for rows.Next() {
		var (
			personID    types.PersonID
			choreID     types.ChoreID
			name        string
			description string
			level       uint8
			frequency   uint8
			last        sql.NullString
		)
		if err := rows.Scan(&personID, &choreID, &name, &description, &level, &frequency, &last); err != nil {
			return nil, queryError("get_schedules", "schedule", err)
		}
		schedules = append(schedules, models.NewSchedule(
			personID, choreID, name, description, level, frequency, nullStringToString(last),
		))
	}
	if err := rows.Err(); err != nil {
		return nil, queryError("get_schedules", "schedule", err)
	}

	return schedules, nil
}
