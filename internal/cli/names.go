package cli

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/chores/internal/app"
	"github.com/thenoetrevino/chores/internal/types"
)

// Names resolves person and chore ids to their labels for display
type Names struct {
	persons map[types.PersonID]string
	chores  map[types.ChoreID]string
}

// LoadNames reads every person and chore once
func LoadNames(ctx context.Context, a *app.App) (Names, error) {
	persons, err := a.PersonService.ListPersons(ctx)
	if err != nil {
		return Names{}, err
	}
	chores, err := a.ChoreService.ListChores(ctx)
	if err != nil {
		return Names{}, err
	}

	n := Names{
		persons: make(map[types.PersonID]string, len(persons)),
		chores:  make(map[types.ChoreID]string, len(chores)),
	}
	for _, p := range persons {
		n.persons[p.ID] = p.Name
	}
	for _, c := range chores {
		n.chores[c.ID] = c.Description
	}
	return n, nil
}

// Person returns the name for id, or "#id" when it is not known
func (n Names) Person(id types.PersonID) string {
	if name, ok := n.persons[id]; ok {
		return name
	}
	return fmt.Sprintf("#%d", id)
}

// Chore returns the description for id, or "#id" when it is not known
func (n Names) Chore(id types.ChoreID) string {
	if desc, ok := n.chores[id]; ok {
		return desc
	}
	return fmt.Sprintf("#%d", id)
}
