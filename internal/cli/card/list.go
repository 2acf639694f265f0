package card

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/notscrum/internal/cli"
)

// ListCmd returns the card list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the cards of a lane in order",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}

	cmd.Flags().Int("lane", 0, "Lane ID (required)")
	_ = cmd.MarkFlagRequired("lane")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)
	laneID, _ := cmd.Flags().GetInt("lane")

	a, err := cli.AppFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	cards, err := a.CardService.ListCardsByLane(ctx, laneID)
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		ids := make([]int, len(cards))
		for i, c := range cards {
			ids[i] = c.ID
		}
		return formatter.Success(ids, "")
	}

	if len(cards) == 0 {
		return formatter.Success(cards, fmt.Sprintf("No cards in lane %d", laneID))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Cards in lane %d:", laneID)
	for _, c := range cards {
		fmt.Fprintf(&b, "\n  [%d] %s (ID: %d)", c.Position, c.Title, c.ID)
	}
	return formatter.Success(cards, b.String())
}
