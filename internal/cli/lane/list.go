package lane

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/notscrum/internal/cli"
)

// ListCmd returns the lane list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the lanes of a board in order",
		Long: `List the lanes of a board by ascending position.

Examples:
  notscrum lane list --board 1
  notscrum lane list --board 1 --quiet
`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	cmd.Flags().Int("board", 0, "Board ID (required)")
	_ = cmd.MarkFlagRequired("board")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)
	boardID, _ := cmd.Flags().GetInt("board")

	a, err := cli.AppFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	lanes, err := a.LaneService.ListLanesByBoard(ctx, boardID)
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		ids := make([]int, len(lanes))
		for i, l := range lanes {
			ids[i] = l.ID
		}
		return formatter.Success(ids, "")
	}

	if len(lanes) == 0 {
		return formatter.Success(lanes, fmt.Sprintf("No lanes found on board %d", boardID))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Lanes on board %d:", boardID)
	for _, l := range lanes {
		fmt.Fprintf(&b, "\n  [%d] %s (ID: %d)", l.Position, l.Name, l.ID)
	}
	return formatter.Success(lanes, b.String())
}
