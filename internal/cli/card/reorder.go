package card

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/notscrum/internal/cli"
)

// ReorderCmd returns the card reorder subcommand
func ReorderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reorder",
		Short: "Set the order of a lane's cards",
		Long: `Give the cards of a lane positions 0..n-1 in the order listed.
Every ID must be a card of the lane; nothing is written otherwise.

Examples:
  notscrum card reorder --lane 1 --order 2,1
`,
		Args: cobra.NoArgs,
		RunE: runReorder,
	}

	cmd.Flags().Int("lane", 0, "Lane ID (required)")
	cmd.Flags().IntSlice("order", nil, "Card IDs in their new order (required)")
	_ = cmd.MarkFlagRequired("lane")
	_ = cmd.MarkFlagRequired("order")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runReorder(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	laneID, _ := cmd.Flags().GetInt("lane")
	order, _ := cmd.Flags().GetIntSlice("order")

	a, err := cli.AppFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	cards, err := a.CardService.ReorderCards(ctx, laneID, order)
	if err != nil {
		return formatter.Fail(err)
	}

	titles := make([]string, len(cards))
	ids := make([]int, len(cards))
	for i, c := range cards {
		titles[i] = c.Title
		ids[i] = c.ID
	}
	if formatter.Quiet {
		return formatter.Success(ids, "")
	}
	return formatter.Success(cards, fmt.Sprintf("Lane %d: %s", laneID, strings.Join(titles, " → ")))
}
