// Package report prints the chore schedule: who last did each assigned
// chore and when it is next due.
package report

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/chores/internal/cli"
	"github.com/thenoetrevino/chores/internal/cli/handler"
	"github.com/thenoetrevino/chores/internal/models"
)

// Report formats
const (
	FormatTable    = "table"
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
)

// ReportCmd returns the report command
func ReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show when each assigned chore was last done and is next due",
		Long: `Print one row per assigned (person, chore) pair with the last completion
date and the next due date. Rows that are past due are highlighted.

Examples:
  chores report
  chores report --overdue
  chores report --format markdown
  chores report --format json
`,
		Args: cobra.NoArgs,
		RunE: handler.Command(handler.HandlerFunc(runReport), nil),
	}

	cmd.Flags().String("format", FormatTable, "Output format: table, markdown or json")
	cmd.Flags().Bool("overdue", false, "Only show overdue chores")

	handler.AddOutputFlags(cmd)

	return cmd
}

func runReport(ctx context.Context, args *handler.Arguments) (any, error) {
	format, err := args.Parser().ParseChoice("format", FormatTable, FormatMarkdown, FormatJSON)
	if err != nil {
		return nil, err
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialization error: %w", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("failed to close CLI", "error", err)
		}
	}()

	tasks := cliInstance.App.TaskService
	var schedules []models.Schedule
	if args.GetBool("overdue") {
		schedules, err = tasks.ListOverdue(ctx)
	} else {
		schedules, err = tasks.ListSchedules(ctx)
	}
	if err != nil {
		return nil, err
	}

	return &Report{
		Schedules: schedules,
		Format:    format,
		Today:     cliInstance.App.Now(),
		out:       args.GetCmd().OutOrStdout(),
	}, nil
}

// Report is the rendered schedule. It prints in the requested format and
// marshals as the plain schedule rows.
type Report struct {
	Schedules []models.Schedule
	Format    string
	Today     time.Time

	out io.Writer
}

func (r *Report) String() string {
	switch r.Format {
	case FormatMarkdown:
		return RenderMarkdown(r.Schedules, r.Today, r.out)
	case FormatJSON:
		return RenderJSON(r.Schedules)
	default:
		return RenderTable(r.Schedules, r.Today)
	}
}

// IDs lists the chore id of every row
func (r *Report) IDs() []int64 {
	ids := make([]int64, len(r.Schedules))
	for i, s := range r.Schedules {
		ids[i] = int64(s.ChoreID)
	}
	return ids
}

func (r *Report) MarshalJSON() ([]byte, error) {
	return marshalSchedules(r.Schedules)
}
