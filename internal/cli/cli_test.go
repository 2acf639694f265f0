package cli

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/notscrum/internal/app"
	"github.com/thenoetrevino/notscrum/internal/config"
	boardservice "github.com/thenoetrevino/notscrum/internal/services/board"
	"github.com/thenoetrevino/notscrum/internal/testutil"
)

func TestFromContext(t *testing.T) {
	_, err := FromContext(context.Background())
	assert.Error(t, err)

	c := New(config.Default())
	got, err := FromContext(WithCLI(context.Background(), c))
	require.NoError(t, err)
	assert.Same(t, c, got)
}

func TestCLI_OpensDatabaseLazily(t *testing.T) {
	cfg := config.Default()
	cfg.DBPath = filepath.Join(t.TempDir(), "nested", "board.db")
	cfg.DefaultLanes = []string{"Backlog"}

	c := New(cfg)
	ctx := WithCLI(context.Background(), c)

	a, err := AppFromContext(ctx)
	require.NoError(t, err)
	again, err := c.App(ctx)
	require.NoError(t, err)
	assert.Same(t, a, again)

	board, err := a.BoardService.CreateBoard(ctx, boardservice.CreateBoardRequest{Name: "B"})
	require.NoError(t, err)
	require.Len(t, board.Lanes, 1)
	assert.Equal(t, "Backlog", board.Lanes[0].Name)

	require.NoError(t, c.Close())
	require.NoError(t, c.Close())
}

func TestCLI_BorrowedAppStaysOpen(t *testing.T) {
	db := testutil.SetupTestDB(t)
	a := app.New(db)

	c := NewWithApp(a)
	got, err := c.App(context.Background())
	require.NoError(t, err)
	assert.Same(t, a, got)

	require.NoError(t, c.Close())
	assert.NoError(t, db.PingContext(context.Background()))
}
