package card

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/notscrum/internal/ordering"
)

// CardCmd returns the card parent command
func CardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "card",
		Short: "Manage cards",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(MoveCmd())
	cmd.AddCommand(ReorderCmd())

	return cmd
}

// parseDue accepts a plain date or an RFC 3339 timestamp
func parseDue(s string) (*time.Time, error) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, fmt.Errorf("%w: due date %q must be YYYY-MM-DD or RFC 3339", ordering.ErrValidation, s)
}
