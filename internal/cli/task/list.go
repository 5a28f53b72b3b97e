package task

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/chores/internal/cli"
	"github.com/thenoetrevino/chores/internal/cli/handler"
	"github.com/thenoetrevino/chores/internal/cli/styles"
	"github.com/thenoetrevino/chores/internal/models"
)

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded completions",
		Args:  cobra.NoArgs,
		RunE:  handler.SimpleCommand(handler.HandlerFunc(runList)),
	}

	handler.AddOutputFlags(cmd)

	return cmd
}

func runList(ctx context.Context, _ *handler.Arguments) (any, error) {
	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialization error: %w", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("failed to close CLI", "error", err)
		}
	}()

	tasks, err := cliInstance.App.TaskService.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	names, err := cli.LoadNames(ctx, cliInstance.App)
	if err != nil {
		return nil, err
	}

	return taskList{items: tasks, names: names}, nil
}

type taskList struct {
	items []models.Task
	names cli.Names
}

func (l taskList) String() string {
	if len(l.items) == 0 {
		return styles.SubtitleStyle.Render("Nothing recorded yet. Record with: chores task -p <person> -c <chore>")
	}
	rows := make([][]string, len(l.items))
	for i, t := range l.items {
		rows[i] = []string{
			strconv.FormatInt(int64(t.ID), 10),
			l.names.Person(t.PersonID),
			l.names.Chore(t.ChoreID),
			t.Done,
		}
	}
	return styles.Table([]string{"ID", "Person", "Chore", "Done"}, rows, nil)
}

func (l taskList) IDs() []int64 {
	ids := make([]int64, len(l.items))
	for i, t := range l.items {
		ids[i] = t.GetID()
	}
	return ids
}

func (l taskList) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.items)
}
