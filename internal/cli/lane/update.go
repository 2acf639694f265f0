package lane

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/notscrum/internal/cli"
	laneservice "github.com/thenoetrevino/notscrum/internal/services/lane"
)

// UpdateCmd returns the lane update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Rename a lane or set its position",
		Args:  cobra.NoArgs,
		RunE:  runUpdate,
	}

	cmd.Flags().Int("id", 0, "Lane ID (required)")
	cmd.Flags().String("name", "", "New name")
	cmd.Flags().Int("position", 0, "New position")
	_ = cmd.MarkFlagRequired("id")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	id, _ := cmd.Flags().GetInt("id")
	req := laneservice.UpdateLaneRequest{ID: id}
	if cmd.Flags().Changed("name") {
		name, _ := cmd.Flags().GetString("name")
		req.Name = &name
	}
	if cmd.Flags().Changed("position") {
		position, _ := cmd.Flags().GetInt("position")
		req.Position = &position
	}
	if req.Name == nil && req.Position == nil {
		return formatter.Fail(&cli.UsageError{Msg: "nothing to update: pass --name or --position"})
	}

	a, err := cli.AppFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	lane, err := a.LaneService.UpdateLane(ctx, req)
	if err != nil {
		return formatter.Fail(err)
	}

	return formatter.Success(lane, fmt.Sprintf("Updated lane %d: '%s' at position %d", lane.ID, lane.Name, lane.Position))
}
