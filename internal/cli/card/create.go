package card

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/notscrum/internal/cli"
	cardservice "github.com/thenoetrevino/notscrum/internal/services/card"
)

// CreateCmd returns the card create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a card to a lane",
		Long: `Add a card to a lane. Without --position the card goes after the
lane's last card.

Examples:
  notscrum card create --lane 1 --title "Fix auth bug"
  notscrum card create --lane 1 --title Release --color green --due 2026-12-01
  notscrum card create --lane 2 --title Hotfix --position 0 --quiet
`,
		Args: cobra.NoArgs,
		RunE: runCreate,
	}

	cmd.Flags().Int("lane", 0, "Lane ID (required)")
	cmd.Flags().String("title", "", "Card title (required)")
	cmd.Flags().String("description", "", "Card description (markdown)")
	cmd.Flags().String("color", "", "Card color (default white)")
	cmd.Flags().Int("position", 0, "Explicit position")
	cmd.Flags().String("due", "", "Due date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("lane")
	_ = cmd.MarkFlagRequired("title")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	req := cardservice.CreateCardRequest{}
	req.LaneID, _ = cmd.Flags().GetInt("lane")
	req.Title, _ = cmd.Flags().GetString("title")
	req.Description, _ = cmd.Flags().GetString("description")
	req.Color, _ = cmd.Flags().GetString("color")
	if cmd.Flags().Changed("position") {
		position, _ := cmd.Flags().GetInt("position")
		req.Position = &position
	}
	if due, _ := cmd.Flags().GetString("due"); due != "" {
		t, err := parseDue(due)
		if err != nil {
			return formatter.Fail(err)
		}
		req.DueDate = t
	}

	a, err := cli.AppFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	card, err := a.CardService.CreateCard(ctx, req)
	if err != nil {
		return formatter.Fail(err)
	}

	return formatter.Success(card, fmt.Sprintf("Created card '%s' (ID: %d) in lane %d at position %d", card.Title, card.ID, card.LaneID, card.Position))
}
