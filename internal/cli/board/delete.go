package board

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/notscrum/internal/cli"
)

// DeleteCmd returns the board delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a board with its lanes and cards",
		Args:  cobra.NoArgs,
		RunE:  runDelete,
	}

	cmd.Flags().Int("id", 0, "Board ID (required)")
	_ = cmd.MarkFlagRequired("id")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)
	id, _ := cmd.Flags().GetInt("id")

	a, err := cli.AppFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	if err := a.BoardService.DeleteBoard(ctx, id); err != nil {
		return formatter.Fail(err)
	}

	return formatter.Success(map[string]int{"id": id}, fmt.Sprintf("Deleted board %d", id))
}
