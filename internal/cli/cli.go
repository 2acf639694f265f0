package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/thenoetrevino/notscrum/internal/app"
	"github.com/thenoetrevino/notscrum/internal/config"
	"github.com/thenoetrevino/notscrum/internal/database"
	"github.com/thenoetrevino/notscrum/internal/logging"
)

// CLI represents the CLI application context. The App is opened on first use
// so commands that never touch the database (config init) do not create one.
type CLI struct {
	Config *config.Config

	app   *app.App
	owned bool
}

// New creates a CLI that opens its database from cfg
func New(cfg *config.Config) *CLI {
	return &CLI{Config: cfg, owned: true}
}

// NewWithApp wraps an existing App. Close leaves it open.
func NewWithApp(a *app.App) *CLI {
	return &CLI{Config: config.Default(), app: a}
}

// App returns the application container, initializing the database if needed
func (c *CLI) App(ctx context.Context) (*app.App, error) {
	if c.app != nil {
		return c.app, nil
	}

	db, err := database.InitDB(ctx, c.Config.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	c.app = app.New(db,
		app.WithDefaultLanes(c.Config.DefaultLanes),
		app.WithLogger(logging.Logger),
	)
	return c.app, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if c.app == nil || !c.owned {
		return nil
	}
	err := c.app.Close()
	c.app = nil
	return err
}

type cliKey struct{}

// WithCLI stores c in ctx for subcommands
func WithCLI(ctx context.Context, c *CLI) context.Context {
	return context.WithValue(ctx, cliKey{}, c)
}

// FromContext returns the CLI installed by the root command
func FromContext(ctx context.Context) (*CLI, error) {
	if ctx == nil {
		return nil, errors.New("no CLI context")
	}
	c, ok := ctx.Value(cliKey{}).(*CLI)
	if !ok || c == nil {
		return nil, errors.New("no CLI context")
	}
	return c, nil
}

// AppFromContext is FromContext followed by App
func AppFromContext(ctx context.Context) (*app.App, error) {
	c, err := FromContext(ctx)
	if err != nil {
		return nil, err
	}
	return c.App(ctx)
}
