package models

import (
	"fmt"

	"github.com/thenoetrevino/chores/internal/types"
)

// Chore is a recurring piece of housework.
// Level is an opaque priority chosen by the user; Frequency is the number
// of days between two completions.
type Chore struct {
	ID          types.ChoreID `json:"id"`
	Description string        `json:"description"`
	Level       uint8         `json:"level"`
	Frequency   uint8         `json:"frequency"`
}

// String renders the chore the way pickers list them,
// e.g. "dishes (id:0001) [fr: 3]".
func (c Chore) String() string {
	return fmt.Sprintf("%s (id:%04d) [fr: %d]", c.Description, c.ID, c.Frequency)
}

// GetID implements the GetID interface for quiet mode output
func (c Chore) GetID() int64 {
	return int64(c.ID)
}
