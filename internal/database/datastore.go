package database

// DataStore defines the unified interface for all chore operations.
// It is composed of smaller, domain-specific interfaces so consumers can
// depend on just the part they use (e.g. PersonReader for a picker).
type DataStore interface {
	PersonRepository
	ChoreRepository
	AssignmentRepository
	TaskRepository
	ScheduleRepository
}

// Compile-time checks that every implementation satisfies DataStore
var (
	_ DataStore = (*Repository)(nil)
	_ DataStore = (*MemoryStore)(nil)
	_ DataStore = (*LoggingStore)(nil)
)
