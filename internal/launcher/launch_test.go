package launcher

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/chores/internal/app"
	"github.com/thenoetrevino/chores/internal/database"
)

func TestLaunch_QuitsOnQ(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	a := app.New(database.NewMemoryStore())
	var out bytes.Buffer

	err := Launch(ctx, a,
		tea.WithInput(strings.NewReader("q")),
		tea.WithOutput(&out),
	)
	require.NoError(t, err)
}
