// Package board is the full-screen schedule board: one row per assigned
// chore, with the selected chore markable as done today.
package board

import (
	"context"
	"fmt"
	"time"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/chores/internal/models"
	taskservice "github.com/thenoetrevino/chores/internal/services/task"
)

// schedulesLoadedMsg carries the result of a schedule query
type schedulesLoadedMsg struct {
	schedules []models.Schedule
	err       error
}

// taskRecordedMsg carries the result of marking a chore done
type taskRecordedMsg struct {
	row  models.Schedule
	task models.Task
	err  error
}

// Model is the board state
type Model struct {
	ctx   context.Context
	tasks taskservice.Service
	now   func() time.Time

	keys KeyMap
	help help.Model

	schedules []models.Schedule
	cursor    int
	loaded    bool
	status    string
	err       error

	width  int
	height int
}

// New creates a board over the task service. now decides which rows are
// overdue and should match the clock the service records with.
func New(ctx context.Context, tasks taskservice.Service, now func() time.Time) Model {
	if now == nil {
		now = time.Now
	}
	return Model{
		ctx:   ctx,
		tasks: tasks,
		now:   now,
		keys:  DefaultKeyMap(),
		help:  help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return m.load()
}

func (m Model) load() tea.Cmd {
	return func() tea.Msg {
		schedules, err := m.tasks.ListSchedules(m.ctx)
		return schedulesLoadedMsg{schedules: schedules, err: err}
	}
}

func (m Model) markDone(row models.Schedule) tea.Cmd {
	return func() tea.Msg {
		task, err := m.tasks.RecordTask(m.ctx, taskservice.RecordTaskRequest{
			PersonID: row.PersonID,
			ChoreID:  row.ChoreID,
		})
		return taskRecordedMsg{row: row, task: task, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case schedulesLoadedMsg:
		m.loaded = true
		m.err = msg.err
		if msg.err == nil {
			m.schedules = msg.schedules
			m.cursor = clamp(m.cursor, len(m.schedules))
		}
		return m, nil

	case taskRecordedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.status = fmt.Sprintf("✓ %s did %s on %s", msg.row.Name, msg.row.Description, msg.task.Done)
		return m, m.load()

	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.schedules)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Done):
		if row, ok := m.Selected(); ok {
			return m, m.markDone(row)
		}

	case key.Matches(msg, m.keys.Reload):
		m.status = ""
		return m, m.load()
	}

	return m, nil
}

// Selected returns the row under the cursor
func (m Model) Selected() (models.Schedule, bool) {
	if m.cursor < 0 || m.cursor >= len(m.schedules) {
		return models.Schedule{}, false
	}
	return m.schedules[m.cursor], true
}

// Cursor returns the selected row index
func (m Model) Cursor() int {
	return m.cursor
}

// Status returns the last status line, or the last error
func (m Model) Status() string {
	if m.err != nil {
		return "❌ " + m.err.Error()
	}
	return m.status
}

func clamp(i, n int) int {
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}
