package models

import "github.com/thenoetrevino/chores/internal/types"

// Task is a completion record: PersonID did ChoreID on Done.
// Done holds the civil date exactly as it was stored.
type Task struct {
	ID       types.TaskID   `json:"id"`
	PersonID types.PersonID `json:"person_id"`
	ChoreID  types.ChoreID  `json:"chore_id"`
	Done     string         `json:"done"`
}

// GetID implements the GetID interface for quiet mode output
func (t Task) GetID() int64 {
	return int64(t.ID)
}
