package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/notscrum/internal/cli"
	"github.com/thenoetrevino/notscrum/internal/cli/board"
	"github.com/thenoetrevino/notscrum/internal/cli/card"
	"github.com/thenoetrevino/notscrum/internal/cli/lane"
	"github.com/thenoetrevino/notscrum/internal/config"
	"github.com/thenoetrevino/notscrum/internal/logging"
)

// session is what PersistentPreRunE opened and Execute must release
type session struct {
	cli       *cli.CLI
	logCloser io.Closer
}

func (s *session) close() {
	if s.cli != nil {
		if err := s.cli.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
		s.cli = nil
	}
	if s.logCloser != nil {
		_ = s.logCloser.Close()
		s.logCloser = nil
	}
}

// newRootCmd builds the command tree. Resources opened by subcommands are
// tracked in sess; the caller closes it.
func newRootCmd(sess *session) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "notscrum",
		Short: "notscrum - a kanban board backend",
		Long: `notscrum keeps boards, lanes and cards in SQLite and serves them over a
JSON API. The same data can be inspected and rearranged from the terminal.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return sess.open(cmd)
		},
	}

	rootCmd.PersistentFlags().String("config", "", "Config file (default $XDG_CONFIG_HOME/notscrum/config.yaml)")
	rootCmd.PersistentFlags().String("db", "", "SQLite database path (default ~/.notscrum/notscrum.db)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-file", "", "Append logs to this file instead of stderr")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &cli.UsageError{Msg: err.Error()}
	})

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(seedCmd())
	rootCmd.AddCommand(configCmd())
	rootCmd.AddCommand(board.BoardCmd())
	rootCmd.AddCommand(lane.LaneCmd())
	rootCmd.AddCommand(card.CardCmd())

	return rootCmd
}

// open loads the config, installs logging and puts a CLI into the command context
func (s *session) open(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path, cmd.Flags())
	if err != nil {
		return err
	}

	closer, err := logging.Init(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return err
	}
	s.logCloser = closer

	s.cli = cli.New(cfg)
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(cli.WithCLI(ctx, s.cli))
	return nil
}

// Execute runs the root command and returns the process exit code
func Execute() int {
	sess := &session{}
	defer sess.close()

	err := newRootCmd(sess).Execute()
	if err == nil {
		return cli.ExitSuccess
	}
	if !cli.IsReported(err) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		var usage *cli.UsageError
		if errors.As(err, &usage) {
			fmt.Fprintln(os.Stderr, "Run 'notscrum --help' for usage.")
		}
	}
	return cli.ExitCode(err)
}
