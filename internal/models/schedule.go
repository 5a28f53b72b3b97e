package models

import (
	"time"

	"github.com/thenoetrevino/chores/internal/types"
)

// Unknown is reported for Last and Next when no usable date exists
const Unknown = "unknown"

// Schedule is one row of the derived schedule view: when an assigned chore
// was last done by a person and when it is next due.
type Schedule struct {
	PersonID    types.PersonID `json:"person_id"`
	ChoreID     types.ChoreID  `json:"chore_id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Level       uint8          `json:"level"`
	Frequency   uint8          `json:"frequency"`
	Last        string         `json:"last"`
	Next        string         `json:"next"`
}

// NewSchedule builds a schedule row and derives Next from last and the
// chore frequency. An empty last means the chore was never done.
func NewSchedule(personID types.PersonID, choreID types.ChoreID, name, description string, level, frequency uint8, last string) Schedule {
	if last == "" {
		last = Unknown
	}
	return Schedule{
		PersonID:    personID,
		ChoreID:     choreID,
		Name:        name,
		Description: description,
		Level:       level,
		Frequency:   frequency,
		Last:        last,
		Next:        NextDue(last, frequency),
	}
}

// Overdue reports whether the chore should already have been done by today.
// Rows with an unknown next date are never overdue.
func (s Schedule) Overdue(today time.Time) bool {
	next, err := ParseDate(s.Next)
	if err != nil {
		return false
	}
	return next.Before(CivilDay(today))
}
