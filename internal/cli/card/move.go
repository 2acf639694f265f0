package card

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/notscrum/internal/cli"
	cardservice "github.com/thenoetrevino/notscrum/internal/services/card"
)

// MoveCmd returns the card move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move",
		Short: "Move a card to a lane",
		Long: `Move a card into a lane. Without --position it goes to the end of
the target lane. --order rewrites the whole target lane afterwards.
The lane the card left is not renumbered.

Examples:
  # Append to lane 2
  notscrum card move --id 1 --lane 2

  # Put it at position 0 of lane 2
  notscrum card move --id 1 --lane 2 --position 0

  # Move and set the full order of lane 2
  notscrum card move --id 1 --lane 2 --order 3,1
`,
		Args: cobra.NoArgs,
		RunE: runMove,
	}

	cmd.Flags().Int("id", 0, "Card ID (required)")
	cmd.Flags().Int("lane", 0, "Target lane ID (required)")
	cmd.Flags().Int("position", 0, "Position in the target lane")
	cmd.Flags().IntSlice("order", nil, "Full card order of the target lane")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("lane")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	req := cardservice.MoveCardRequest{}
	req.CardID, _ = cmd.Flags().GetInt("id")
	req.LaneID, _ = cmd.Flags().GetInt("lane")
	if cmd.Flags().Changed("position") {
		position, _ := cmd.Flags().GetInt("position")
		req.Position = &position
	}
	if cmd.Flags().Changed("order") {
		req.CardOrder, _ = cmd.Flags().GetIntSlice("order")
	}

	a, err := cli.AppFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	card, err := a.CardService.MoveCard(ctx, req)
	if err != nil {
		return formatter.Fail(err)
	}

	return formatter.Success(card, fmt.Sprintf("Moved card %d to lane %d at position %d", card.ID, card.LaneID, card.Position))
}
