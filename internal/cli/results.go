package cli

import (
	"encoding/json"
	"fmt"

	"github.com/thenoetrevino/chores/internal/cli/styles"
)

// Changed is the result of a successful add: it prints as a confirmation
// line, marshals as the item itself and reports the item id in quiet mode.
type Changed[T IDGetter] struct {
	Verb string
	Item T
}

func (c Changed[T]) String() string {
	return fmt.Sprintf("%s %s %v", styles.SuccessStyle.Render("✓"), c.Verb, c.Item)
}

// GetID implements IDGetter
func (c Changed[T]) GetID() int64 {
	return c.Item.GetID()
}

// MarshalJSON encodes the wrapped item
func (c Changed[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Item)
}

// Removed is the result of a remove command
type Removed struct {
	Kind string `json:"kind"`
	ID   int64  `json:"id"`
}

func (r Removed) String() string {
	return fmt.Sprintf("%s Removed %s %d", styles.SuccessStyle.Render("✓"), r.Kind, r.ID)
}

// GetID implements IDGetter
func (r Removed) GetID() int64 {
	return r.ID
}
