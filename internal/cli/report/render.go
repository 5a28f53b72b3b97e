package report

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/x/term"
	clistyles "github.com/thenoetrevino/chores/internal/cli/styles"
	"github.com/thenoetrevino/chores/internal/models"
)

const emptyMessage = "No assigned chores. Assign one with: chores assignment add -p <person> -c <chore>"

var headers = []string{"Person", "Chore", "Level", "Every", "Last", "Next"}

func row(s models.Schedule) []string {
	return []string{
		s.Name,
		s.Description,
		strconv.Itoa(int(s.Level)),
		fmt.Sprintf("%dd", s.Frequency),
		s.Last,
		s.Next,
	}
}

// RenderTable renders the schedule as a bordered table with overdue rows highlighted
func RenderTable(schedules []models.Schedule, today time.Time) string {
	if len(schedules) == 0 {
		return clistyles.SubtitleStyle.Render(emptyMessage)
	}

	rows := make([][]string, len(schedules))
	for i, s := range schedules {
		rows[i] = row(s)
	}

	return clistyles.Table(headers, rows, func(i int) bool {
		return schedules[i].Overdue(today)
	})
}

// Markdown builds the schedule as a markdown document. Overdue rows are bold.
func Markdown(schedules []models.Schedule, today time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Chores on %s\n\n", models.FormatDate(models.CivilDay(today)))

	if len(schedules) == 0 {
		b.WriteString("_" + emptyMessage + "_\n")
		return b.String()
	}

	b.WriteString("| " + strings.Join(headers, " | ") + " | Status |\n")
	b.WriteString(strings.Repeat("| --- ", len(headers)+1) + "|\n")
	for _, s := range schedules {
		cells := row(s)
		status := "ok"
		if s.Overdue(today) {
			status = "**overdue**"
		}
		for i, c := range cells {
			cells[i] = strings.ReplaceAll(c, "|", `\|`)
		}
		b.WriteString("| " + strings.Join(cells, " | ") + " | " + status + " |\n")
	}
	return b.String()
}

// RenderMarkdown renders Markdown through glamour. Terminals get the dark
// style; pipes and files get plain text.
func RenderMarkdown(schedules []models.Schedule, today time.Time, out io.Writer) string {
	md := Markdown(schedules, today)

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(markdownStyle(out)),
		glamour.WithWordWrap(120),
	)
	if err != nil {
		slog.Warn("markdown renderer unavailable", "error", err)
		return md
	}

	rendered, err := renderer.Render(md)
	if err != nil {
		slog.Warn("failed to render markdown", "error", err)
		return md
	}
	return strings.TrimRight(rendered, "\n")
}

func markdownStyle(out io.Writer) string {
	if f, ok := out.(*os.File); ok && term.IsTerminal(f.Fd()) {
		return styles.DarkStyle
	}
	return styles.NoTTYStyle
}

// RenderJSON renders the schedule rows as an indented JSON array
func RenderJSON(schedules []models.Schedule) string {
	data, err := json.MarshalIndent(nonNil(schedules), "", "  ")
	if err != nil {
		return fmt.Sprintf("failed to encode report: %v", err)
	}
	return string(data)
}

func marshalSchedules(schedules []models.Schedule) ([]byte, error) {
	return json.Marshal(nonNil(schedules))
}

func nonNil(schedules []models.Schedule) []models.Schedule {
	if schedules == nil {
		return []models.Schedule{}
	}
	return schedules
}
