// Package launcher runs full-screen programs with signal handling.
package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/chores/internal/app"
	"github.com/thenoetrevino/chores/internal/tui/board"
)

// Launch runs the schedule board until the user quits or the process is
// interrupted. opts are passed to the bubbletea program.
func Launch(ctx context.Context, a *app.App, opts ...tea.ProgramOption) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	model := board.New(ctx, a.TaskService, a.Now)
	p := tea.NewProgram(model, append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)...)

	errChan := make(chan error, 1)
	go func() {
		_, err := p.Run()
		errChan <- err
	}()

	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("error running board: %w", err)
		}
	case <-ctx.Done():
		slog.Info("shutdown signal received, stopping board")
		p.Quit()
		if err := <-errChan; err != nil && ctx.Err() == nil {
			return fmt.Errorf("error running board: %w", err)
		}
	}

	return nil
}
