package database

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/thenoetrevino/chores/internal/models"
	"github.com/thenoetrevino/chores/internal/types"
)

// MemoryStore is a DataStore kept entirely in memory. It enforces the same
// rules as the SQLite schema: unique names and descriptions, existing
// references, cascading deletes and ids that are never reused.
type MemoryStore struct {
	mu sync.RWMutex

	persons     []models.Person
	chores      []models.Chore
	assignments []models.Assignment
	tasks       []models.Task

	lastPersonID     types.PersonID
	lastChoreID      types.ChoreID
	lastAssignmentID types.AssignmentID
	lastTaskID       types.TaskID
}

// NewMemoryStore returns an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func constraintError(op, table, reason string) error {
	return &DataError{Kind: ErrInsert, Op: op, Table: table, Reason: reason}
}

func (m *MemoryStore) AddPerson(_ context.Context, name string) (models.Person, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if name == "" {
		return models.Person{}, constraintError("add_person", "person", reasonCheck)
	}
	if slices.ContainsFunc(m.persons, func(p models.Person) bool { return p.Name == name }) {
		return models.Person{}, constraintError("add_person", "person", reasonUnique)
	}

	m.lastPersonID++
	p := models.Person{ID: m.lastPersonID, Name: name}
	m.persons = append(m.persons, p)
	return p, nil
}

func (m *MemoryStore) GetPersons(_ context.Context) ([]models.Person, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]models.Person{}, m.persons...), nil
}

func (m *MemoryStore) RemovePerson(_ context.Context, id types.PersonID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.persons = slices.DeleteFunc(m.persons, func(p models.Person) bool { return p.ID == id })
	m.assignments = slices.DeleteFunc(m.assignments, func(a models.Assignment) bool { return a.PersonID == id })
	m.tasks = slices.DeleteFunc(m.tasks, func(t models.Task) bool { return t.PersonID == id })
	return nil
}

func (m *MemoryStore) AddChore(_ context.Context, description string, level, frequency uint8) (models.Chore, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if description == "" {
		return models.Chore{}, constraintError("add_chore", "chore", reasonCheck)
	}
	if slices.ContainsFunc(m.chores, func(c models.Chore) bool { return c.Description == description }) {
		return models.Chore{}, constraintError("add_chore", "chore", reasonUnique)
	}

	m.lastChoreID++
	c := models.Chore{ID: m.lastChoreID, Description: description, Level: level, Frequency: frequency}
	m.chores = append(m.chores, c)
	return c, nil
}

func (m *MemoryStore) GetChores(_ context.Context) ([]models.Chore, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]models.Chore{}, m.chores...), nil
}

func (m *MemoryStore) RemoveChore(_ context.Context, id types.ChoreID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.chores = slices.DeleteFunc(m.chores, func(c models.Chore) bool { return c.ID == id })
	m.assignments = slices.DeleteFunc(m.assignments, func(a models.Assignment) bool { return a.ChoreID == id })
	m.tasks = slices.DeleteFunc(m.tasks, func(t models.Task) bool { return t.ChoreID == id })
	return nil
}

func (m *MemoryStore) Assign(_ context.Context, personID types.PersonID, choreID types.ChoreID) (models.Assignment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.referencesExist(personID, choreID) {
		return models.Assignment{}, constraintError("assign", "assignment", reasonForeignKey)
	}

	m.lastAssignmentID++
	a := models.Assignment{ID: m.lastAssignmentID, PersonID: personID, ChoreID: choreID}
	m.assignments = append(m.assignments, a)
	return a, nil
}

func (m *MemoryStore) GetAssignments(_ context.Context) ([]models.Assignment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]models.Assignment{}, m.assignments...), nil
}

func (m *MemoryStore) RemoveAssignment(_ context.Context, id types.AssignmentID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.assignments = slices.DeleteFunc(m.assignments, func(a models.Assignment) bool { return a.ID == id })
	return nil
}

func (m *MemoryStore) AddTask(_ context.Context, personID types.PersonID, choreID types.ChoreID, date string) (models.Task, error) {
	if _, err := models.ParseDate(date); err != nil {
		return models.Task{}, parseError("add_task", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.referencesExist(personID, choreID) {
		return models.Task{}, constraintError("add_task", "task", reasonForeignKey)
	}

	m.lastTaskID++
	t := models.Task{ID: m.lastTaskID, PersonID: personID, ChoreID: choreID, Done: date}
	m.tasks = append(m.tasks, t)
	return t, nil
}

func (m *MemoryStore) GetTasks(_ context.Context) ([]models.Task, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]models.Task{}, m.tasks...), nil
}

// GetSchedules mirrors the SQL schedule query: one row per assigned pair,
// the latest done date (larger task id on ties), ordered by person then chore.
func (m *MemoryStore) GetSchedules(_ context.Context) ([]models.Schedule, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	type pair struct {
		person types.PersonID
		chore  types.ChoreID
	}

	seen := map[pair]bool{}
	pairs := []pair{}
	for _, a := range m.assignments {
		k := pair{a.PersonID, a.ChoreID}
		if !seen[k] {
			seen[k] = true
			pairs = append(pairs, k)
		}
	}
	slices.SortFunc(pairs, func(a, b pair) int {
		if c := cmp.Compare(a.person, b.person); c != 0 {
			return c
		}
		return cmp.Compare(a.chore, b.chore)
	})

	schedules := make([]models.Schedule, 0, len(pairs))
	for _, k := range pairs {
		p, _ := m.person(k.person)
		c, _ := m.chore(k.chore)

		var latest *models.Task
		for i := range m.tasks {
			t := &m.tasks[i]
			if t.PersonID != k.person || t.ChoreID != k.chore {
				continue
			}
			if latest == nil || t.Done > latest.Done || (t.Done == latest.Done && t.ID > latest.ID) {
				latest = t
			}
		}

		last := ""
		if latest != nil {
			last = latest.Done
		}
		schedules = append(schedules, models.NewSchedule(
			p.ID, c.ID, p.Name, c.Description, c.Level, c.Frequency, last,
		))
	}

	return schedules, nil
}

// referencesExist must be called with the lock held
func (m *MemoryStore) referencesExist(personID types.PersonID, choreID types.ChoreID) bool {
	_, okPerson := m.person(personID)
	_, okChore := m.chore(choreID)
	return okPerson && okChore
}

func (m *MemoryStore) person(id types.PersonID) (models.Person, bool) {
	i := slices.IndexFunc(m.persons, func(p models.Person) bool { return p.ID == id })
	if i < 0 {
		return models.Person{}, false
	}
	return m.persons[i], true
}

func (m *MemoryStore) chore(id types.ChoreID) (models.Chore, bool) {
	i := slices.IndexFunc(m.chores, func(c models.Chore) bool { return c.ID == id })
	if i < 0 {
		return models.Chore{}, false
	}
	return m.chores[i], true
}
