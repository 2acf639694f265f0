package lane

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/notscrum/internal/cli"
	laneservice "github.com/thenoetrevino/notscrum/internal/services/lane"
)

// CreateCmd returns the lane create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a lane to a board",
		Long: `Add a lane to a board. Without --position the lane goes after the
current last lane; an explicit position is stored as given.

Examples:
  notscrum lane create --board 1 --name Review
  notscrum lane create --board 1 --name Blocked --position 0
`,
		Args: cobra.NoArgs,
		RunE: runCreate,
	}

	cmd.Flags().Int("board", 0, "Board ID (required)")
	cmd.Flags().String("name", "", "Lane name (required)")
	cmd.Flags().Int("position", 0, "Explicit position")
	_ = cmd.MarkFlagRequired("board")
	_ = cmd.MarkFlagRequired("name")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	boardID, _ := cmd.Flags().GetInt("board")
	name, _ := cmd.Flags().GetString("name")
	req := laneservice.CreateLaneRequest{Name: name, BoardID: boardID}
	if cmd.Flags().Changed("position") {
		position, _ := cmd.Flags().GetInt("position")
		req.Position = &position
	}

	a, err := cli.AppFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	lane, err := a.LaneService.CreateLane(ctx, req)
	if err != nil {
		return formatter.Fail(err)
	}

	return formatter.Success(lane, fmt.Sprintf("Created lane '%s' (ID: %d) at position %d", lane.Name, lane.ID, lane.Position))
}
