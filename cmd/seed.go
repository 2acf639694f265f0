package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/notscrum/internal/cli"
	"github.com/thenoetrevino/notscrum/internal/fixtures"
)

func seedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load boards, lanes and cards from a YAML file",
		Long: `Load boards, lanes and cards from a YAML seed file in one transaction.

Example file:

  boards:
    - name: Website relaunch
      lanes:
        - name: To Do
          cards:
            - title: Fix auth bug
              color: red
              due_date: 2026-11-01
        - name: Done

Examples:
  notscrum seed --file board.yaml
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			formatter := cli.NewFormatter(cmd)
			path, _ := cmd.Flags().GetString("file")

			seed, err := fixtures.ParseFile(path)
			if err != nil {
				return formatter.Fail(err)
			}

			a, err := cli.AppFromContext(ctx)
			if err != nil {
				return formatter.Fail(err)
			}

			sum, err := fixtures.Apply(ctx, a.DB(), seed)
			if err != nil {
				return formatter.Fail(err)
			}
			return formatter.Success(sum, fmt.Sprintf("Seeded %d boards, %d lanes, %d cards", sum.Boards, sum.Lanes, sum.Cards))
		},
	}

	cmd.Flags().String("file", "", "Seed file (required)")
	_ = cmd.MarkFlagRequired("file")
	cli.AddOutputFlags(cmd)

	return cmd
}
