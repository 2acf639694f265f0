package board

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/notscrum/internal/cli"
	"github.com/thenoetrevino/notscrum/internal/models"
	"github.com/thenoetrevino/notscrum/internal/render"
)

// ShowCmd returns the board show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Render a board with its lanes and cards",
		Long: `Render a board in the terminal, lanes side by side in position order.

Examples:
  notscrum board show --id 1
  notscrum board show --id 1 --width 36
  notscrum board show --id 1 --json
`,
		Args: cobra.NoArgs,
		RunE: runShow,
	}

	cmd.Flags().Int("id", 0, "Board ID (required)")
	cmd.Flags().Int("width", render.DefaultLaneWidth, "Lane width in columns")
	_ = cmd.MarkFlagRequired("id")
	cli.AddOutputFlags(cmd)

	return cmd
}

// boardDetail is the JSON shape of board show
type boardDetail struct {
	*models.Board
	Cards map[int][]*models.Card `json:"cards"`
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)
	id, _ := cmd.Flags().GetInt("id")
	width, _ := cmd.Flags().GetInt("width")

	a, err := cli.AppFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	board, err := a.BoardService.GetBoard(ctx, id)
	if err != nil {
		return formatter.Fail(err)
	}

	cards := make(map[int][]*models.Card, len(board.Lanes))
	for _, lane := range board.Lanes {
		laneCards, err := a.CardService.ListCardsByLane(ctx, lane.ID)
		if err != nil {
			return formatter.Fail(err)
		}
		cards[lane.ID] = laneCards
	}

	view := render.Board(render.BoardView{Board: board, Lanes: board.Lanes, Cards: cards}, render.Options{LaneWidth: width})
	return formatter.Success(boardDetail{Board: board, Cards: cards}, view)
}
