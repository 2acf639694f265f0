package board

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/notscrum/internal/cli"
	"github.com/thenoetrevino/notscrum/internal/ordering"
	"github.com/thenoetrevino/notscrum/internal/testutil"
	clitest "github.com/thenoetrevino/notscrum/internal/testutil/cli"
)

func TestCreateBoard(t *testing.T) {
	_, app := clitest.SetupCLITest(t)

	t.Run("human output", func(t *testing.T) {
		out, err := clitest.ExecuteCLICommand(t, app, CreateCmd(), []string{"--name", "Roadmap"})
		require.NoError(t, err)
		assert.Contains(t, out, "Created board 'Roadmap'")
		assert.Contains(t, out, "with 3 lanes")
	})

	t.Run("json output", func(t *testing.T) {
		out, err := clitest.ExecuteCLICommand(t, app, CreateCmd(), []string{"--name", "Ops", "--description", "on-call", "--json"})
		require.NoError(t, err)

		result := clitest.ParseJSON(t, out)
		assert.Equal(t, true, result["success"])
		data := result["data"].(map[string]any)
		assert.Equal(t, "Ops", data["name"])
		assert.Len(t, data["lanes"], 3)
	})

	t.Run("quiet output", func(t *testing.T) {
		out, err := clitest.ExecuteCLICommand(t, app, CreateCmd(), []string{"--name", "Q", "--quiet"})
		require.NoError(t, err)
		id, err := strconv.Atoi(out[:len(out)-1])
		require.NoError(t, err)
		assert.Positive(t, id)
	})

	t.Run("empty name", func(t *testing.T) {
		_, stderr, err := clitest.ExecuteCLICommandFull(t, app, CreateCmd(), []string{"--name", ""})
		require.Error(t, err)
		assert.ErrorIs(t, err, ordering.ErrValidation)
		assert.True(t, cli.IsReported(err))
		assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
		assert.Contains(t, stderr, "name cannot be empty")
	})
}

func TestListBoards(t *testing.T) {
	db, app := clitest.SetupCLITest(t)

	out, err := clitest.ExecuteCLICommand(t, app, ListCmd(), nil)
	require.NoError(t, err)
	assert.Contains(t, out, "No boards found")

	testutil.CreateTestBoard(t, db, "Alpha")
	testutil.CreateTestBoard(t, db, "Beta")

	out, err = clitest.ExecuteCLICommand(t, app, ListCmd(), nil)
	require.NoError(t, err)
	assert.Contains(t, out, "1. Alpha (ID: 1)")
	assert.Contains(t, out, "2. Beta (ID: 2)")

	out, err = clitest.ExecuteCLICommand(t, app, ListCmd(), []string{"--quiet"})
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n", out)
}

func TestShowBoard(t *testing.T) {
	db, app := clitest.SetupCLITest(t)
	b := testutil.CreateTestBoard(t, db, "Sprint")
	todo := testutil.CreateTestLane(t, db, b.ID, "Todo", 0)
	testutil.CreateTestLane(t, db, b.ID, "Done", 1)
	testutil.CreateTestCard(t, db, todo.ID, "Write docs", 0)

	out, err := clitest.ExecuteCLICommand(t, app, ShowCmd(), []string{"--id", strconv.Itoa(b.ID)})
	require.NoError(t, err)
	assert.Contains(t, out, "Sprint")
	assert.Contains(t, out, "Todo (1)")
	assert.Contains(t, out, "Done (0)")
	assert.Contains(t, out, "Write docs")

	out, err = clitest.ExecuteCLICommand(t, app, ShowCmd(), []string{"--id", strconv.Itoa(b.ID), "--json"})
	require.NoError(t, err)
	data := clitest.ParseJSON(t, out)["data"].(map[string]any)
	assert.Len(t, data["lanes"], 2)
	cards := data["cards"].(map[string]any)
	assert.Len(t, cards[strconv.Itoa(todo.ID)], 1)
}

func TestShowBoard_NotFound(t *testing.T) {
	_, app := clitest.SetupCLITest(t)

	out, err := clitest.ExecuteCLICommand(t, app, ShowCmd(), []string{"--id", "42", "--json"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))

	result := clitest.ParseJSON(t, out)
	assert.Equal(t, false, result["success"])
	assert.Equal(t, "NOT_FOUND", result["error"].(map[string]any)["code"])
}

func TestDeleteBoard(t *testing.T) {
	db, app := clitest.SetupCLITest(t)
	b := testutil.CreateTestBoard(t, db, "Gone")

	out, err := clitest.ExecuteCLICommand(t, app, DeleteCmd(), []string{"--id", strconv.Itoa(b.ID)})
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted board")

	_, err = app.BoardService.GetBoard(context.Background(), b.ID)
	assert.ErrorIs(t, err, ordering.ErrNotFound)
}

func TestBoardCmd_RequiresID(t *testing.T) {
	_, app := clitest.SetupCLITest(t)

	_, err := clitest.ExecuteCLICommand(t, app, ShowCmd(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `required flag(s) "id" not set`)
}
