package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/notscrum/internal/cli"
	"github.com/thenoetrevino/notscrum/internal/config"
)

// run executes the root command with an isolated config directory
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	sess := &session{}
	t.Cleanup(sess.close)

	var out bytes.Buffer
	root := newRootCmd(sess)
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)

	err := root.Execute()
	sess.close()
	return out.String(), err
}

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return filepath.Join(dir, "notscrum.db")
}

func TestMigrate(t *testing.T) {
	db := isolate(t)

	out, err := run(t, "--db", db, "migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "Database schema at version")

	_, err = os.Stat(db)
	assert.NoError(t, err)
}

func TestSeedThenShow(t *testing.T) {
	db := isolate(t)

	out, err := run(t, "--db", db, "seed", "--file", "../internal/fixtures/testdata/board.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "Seeded 2 boards, 3 lanes, 6 cards")

	out, err = run(t, "--db", db, "board", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Website relaunch")

	out, err = run(t, "--db", db, "board", "show", "--id", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Fix auth bug")
	assert.Contains(t, out, "In Progress (2)")

	out, err = run(t, "--db", db, "card", "move", "--id", "1", "--lane", "3", "--position", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "Moved card 1 to lane 3 at position 0")

	out, err = run(t, "--db", db, "card", "list", "--lane", "3", "--quiet")
	require.NoError(t, err)
	assert.Equal(t, "1\n6\n", out)
}

func TestSeed_BadFile(t *testing.T) {
	db := isolate(t)

	_, err := run(t, "--db", db, "seed", "--file", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, cli.IsReported(err))
}

func TestBoardCreate_UsesConfiguredLanes(t *testing.T) {
	db := isolate(t)
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")

	cfg := config.Default()
	cfg.DefaultLanes = []string{"Inbox", "Shipped"}
	require.NoError(t, cfg.Save(cfgPath))

	out, err := run(t, "--config", cfgPath, "--db", db, "board", "create", "--name", "Custom")
	require.NoError(t, err)
	assert.Contains(t, out, "with 2 lanes")

	out, err = run(t, "--config", cfgPath, "--db", db, "lane", "list", "--board", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "[0] Inbox")
	assert.Contains(t, out, "[1] Shipped")
}

func TestConfigInit(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	out, err := run(t, "config", "init", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	cfg, err := config.Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	_, err = run(t, "config", "init", "--config", path)
	assert.ErrorContains(t, err, "already exists")

	_, err = run(t, "config", "init", "--config", path, "--force")
	assert.NoError(t, err)
}

func TestConfigShow_FlagOverridesFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, config.Default().Save(path))

	out, err := run(t, "config", "show", "--config", path, "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, out, "log_level: debug")
	assert.Contains(t, out, "5000")
}

func TestUnknownFlagIsUsageError(t *testing.T) {
	isolate(t)

	_, err := run(t, "board", "list", "--nope")
	require.Error(t, err)
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
}

func TestInvalidLogLevel(t *testing.T) {
	db := isolate(t)

	_, err := run(t, "--db", db, "--log-level", "loud", "migrate")
	assert.ErrorContains(t, err, "unknown log level")
}
