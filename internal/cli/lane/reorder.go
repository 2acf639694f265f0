package lane

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/notscrum/internal/cli"
)

// ReorderCmd returns the lane reorder subcommand
func ReorderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reorder",
		Short: "Set the order of a board's lanes",
		Long: `Give the lanes of a board positions 0..n-1 in the order listed.
Every ID must be a lane of the board; nothing is written otherwise.

Examples:
  notscrum lane reorder --board 1 --order 3,1,2
`,
		Args: cobra.NoArgs,
		RunE: runReorder,
	}

	cmd.Flags().Int("board", 0, "Board ID (required)")
	cmd.Flags().IntSlice("order", nil, "Lane IDs in their new order (required)")
	_ = cmd.MarkFlagRequired("board")
	_ = cmd.MarkFlagRequired("order")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runReorder(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	boardID, _ := cmd.Flags().GetInt("board")
	order, _ := cmd.Flags().GetIntSlice("order")

	a, err := cli.AppFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	lanes, err := a.LaneService.ReorderLanes(ctx, boardID, order)
	if err != nil {
		return formatter.Fail(err)
	}

	names := make([]string, len(lanes))
	ids := make([]int, len(lanes))
	for i, l := range lanes {
		names[i] = l.Name
		ids[i] = l.ID
	}
	if formatter.Quiet {
		return formatter.Success(ids, "")
	}
	return formatter.Success(lanes, fmt.Sprintf("Board %d: %s", boardID, strings.Join(names, " → ")))
}
