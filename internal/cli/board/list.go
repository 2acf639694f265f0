package board

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/notscrum/internal/cli"
)

// ListCmd returns the board list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all boards",
		Long: `List all boards.

Examples:
  notscrum board list
  notscrum board list --json
  notscrum board list --quiet
`,
		Args: cobra.NoArgs,
		RunE: runList,
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	a, err := cli.AppFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	boards, err := a.BoardService.ListBoards(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	ids := make([]int, len(boards))
	for i, b := range boards {
		ids[i] = b.ID
	}
	if formatter.Quiet {
		return formatter.Success(ids, "")
	}

	if len(boards) == 0 {
		return formatter.Success(boards, "No boards found")
	}

	var b strings.Builder
	b.WriteString("Boards:")
	for i, board := range boards {
		fmt.Fprintf(&b, "\n  %d. %s (ID: %d)", i+1, board.Name, board.ID)
	}
	return formatter.Success(boards, b.String())
}
