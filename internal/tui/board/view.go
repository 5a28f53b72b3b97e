package board

import (
	"strconv"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/thenoetrevino/chores/internal/cli/styles"
	"github.com/thenoetrevino/chores/internal/models"
)

func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.Content = m.Render()
	return view
}

// Render draws the board as a string
func (m Model) Render() string {
	if !m.loaded {
		return "Loading..."
	}

	today := models.CivilDay(m.now())

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Chores · " + models.FormatDate(today)))
	b.WriteString("\n\n")

	if len(m.schedules) == 0 {
		b.WriteString(styles.SubtitleStyle.Render("No assigned chores."))
	} else {
		b.WriteString(m.table(today))
	}

	b.WriteString("\n")
	if status := m.Status(); status != "" {
		b.WriteString(status)
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))

	if m.width > 0 {
		return lipgloss.NewStyle().MaxWidth(m.width).MaxHeight(m.height).Render(b.String())
	}
	return b.String()
}

func (m Model) table(today time.Time) string {
	rows := make([][]string, len(m.schedules))
	for i, s := range m.schedules {
		rows[i] = []string{s.Name, s.Description, strconv.Itoa(int(s.Frequency)) + "d", s.Last, s.Next}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styles.BorderStyle).
		Headers("Person", "Chore", "Every", "Last", "Next").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styles.HeaderStyle
			case row == m.cursor:
				return styles.SelectedStyle.Padding(0, 1)
			case m.schedules[row].Overdue(today):
				return styles.OverdueStyle
			default:
				return styles.CellStyle
			}
		})

	return t.Render()
}
