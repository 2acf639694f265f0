package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/notscrum/internal/cli"
	"github.com/thenoetrevino/notscrum/internal/server"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API until interrupted",
		Long: `Run the JSON API. SIGINT or SIGTERM stops accepting connections and
waits up to shutdown_timeout for in-flight requests.

Examples:
  notscrum serve
  notscrum serve --addr 127.0.0.1:8080 --db ./board.db
  NOTSCRUM_CORS_ORIGIN=http://localhost:3000 notscrum serve
`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}

	cmd.Flags().String("addr", "", "Listen address (default :5000)")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c, err := cli.FromContext(ctx)
	if err != nil {
		return err
	}
	a, err := c.App(ctx)
	if err != nil {
		return err
	}

	srv := server.New(a, server.Options{
		Addr:            c.Config.Addr,
		CORSOrigin:      c.Config.CORSOrigin,
		ShutdownTimeout: c.Config.ShutdownTimeout,
	})
	return srv.Start(ctx)
}
