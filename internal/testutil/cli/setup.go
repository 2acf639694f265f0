// Package cli holds helpers for command tests. It is separate from testutil
// to avoid import cycles when service tests import testutil.
package cli

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"testing"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/notscrum/internal/app"
	clictx "github.com/thenoetrevino/notscrum/internal/cli"
	"github.com/thenoetrevino/notscrum/internal/testutil"
)

// SetupCLITest creates an in-memory DB and returns both the DB and App instance
func SetupCLITest(t *testing.T) (*sql.DB, *app.App) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return db, app.New(db)
}

// ExecuteCLICommand runs cmd with args against testApp and returns what it
// wrote to stdout. Stderr is discarded.
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()
	out, _, err := ExecuteCLICommandFull(t, testApp, cmd, args)
	return out, err
}

// ExecuteCLICommandFull is ExecuteCLICommand returning stderr as well
func ExecuteCLICommandFull(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, string, error) {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	var stdout, stderr bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	// Disable usage output on error for cleaner test output
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	ctx := clictx.WithCLI(context.Background(), clictx.NewWithApp(testApp))
	err := cmd.ExecuteContext(ctx)
	return stdout.String(), stderr.String(), err
}

// ParseJSON parses JSON output from CLI commands
func ParseJSON(t *testing.T, output string) map[string]any {
	t.Helper()

	var result map[string]any
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}
	return result
}
