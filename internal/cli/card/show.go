package card

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/notscrum/internal/cli"
	"github.com/thenoetrevino/notscrum/internal/render"
)

// ShowCmd returns the card show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a card with its description rendered as markdown",
		Args:  cobra.NoArgs,
		RunE:  runShow,
	}

	cmd.Flags().Int("id", 0, "Card ID (required)")
	cmd.Flags().String("style", "", "Markdown style: dark, light, notty (default: detect)")
	_ = cmd.MarkFlagRequired("id")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)
	id, _ := cmd.Flags().GetInt("id")
	style, _ := cmd.Flags().GetString("style")

	a, err := cli.AppFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	card, err := a.CardService.GetCard(ctx, id)
	if err != nil {
		return formatter.Fail(err)
	}

	return formatter.Success(card, render.Card(card, render.Options{MarkdownStyle: style}))
}
