package board

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/notscrum/internal/cli"
	boardservice "github.com/thenoetrevino/notscrum/internal/services/board"
)

// CreateCmd returns the board create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a board with the default lanes",
		Long: `Create a board. The lanes listed under default_lanes in the config
are created with it.

Examples:
  notscrum board create --name "Website relaunch"
  notscrum board create --name Ops --description "On-call work" --quiet
`,
		Args: cobra.NoArgs,
		RunE: runCreate,
	}

	cmd.Flags().String("name", "", "Board name (required)")
	cmd.Flags().String("description", "", "Board description")
	_ = cmd.MarkFlagRequired("name")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	name, _ := cmd.Flags().GetString("name")
	description, _ := cmd.Flags().GetString("description")

	a, err := cli.AppFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	board, err := a.BoardService.CreateBoard(ctx, boardservice.CreateBoardRequest{
		Name:        name,
		Description: description,
	})
	if err != nil {
		return formatter.Fail(err)
	}

	return formatter.Success(board, fmt.Sprintf("Created board '%s' (ID: %d) with %d lanes", board.Name, board.ID, len(board.Lanes)))
}
