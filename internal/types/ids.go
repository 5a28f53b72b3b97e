package types

// ID type aliases provide semantic meaning and reduce repetitive int conversions.
// These aliases document what each integer represents in the domain model.
// All ids are SQLite rowids, so they are 64-bit.

// PersonID identifies a household member
type PersonID int64

// ChoreID identifies a recurring chore
type ChoreID int64

// AssignmentID identifies the link between a person and a chore they are responsible for
type AssignmentID int64

// TaskID identifies a single completion record
type TaskID int64
