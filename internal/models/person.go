package models

import (
	"fmt"

	"github.com/thenoetrevino/chores/internal/types"
)

// Person is a household member, identified by a unique name
type Person struct {
	ID   types.PersonID `json:"id"`
	Name string         `json:"name"`
}

// String renders the person the way pickers list them, e.g. "anna (id:0001)".
// Users recognise entries by this label, so the format is stable.
func (p Person) String() string {
	return fmt.Sprintf("%s (id:%04d)", p.Name, p.ID)
}

// GetID implements the GetID interface for quiet mode output
func (p Person) GetID() int64 {
	return int64(p.ID)
}
