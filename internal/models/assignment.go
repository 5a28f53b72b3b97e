package models

import "github.com/thenoetrevino/chores/internal/types"

// Assignment records that a person is responsible for a chore
type Assignment struct {
	ID       types.AssignmentID `json:"id"`
	PersonID types.PersonID     `json:"person_id"`
	ChoreID  types.ChoreID      `json:"chore_id"`
}

// GetID implements the GetID interface for quiet mode output
func (a Assignment) GetID() int64 {
	return int64(a.ID)
}
