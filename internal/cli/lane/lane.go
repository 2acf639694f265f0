package lane

import (
	"github.com/spf13/cobra"
)

// LaneCmd returns the lane parent command
func LaneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lane",
		Short: "Manage lanes",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(ReorderCmd())

	return cmd
}
