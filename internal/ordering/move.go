package ordering

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/notscrum/internal/models"
)

// MoveRequest describes relocating a card into a lane
type MoveRequest struct {
	CardID       int
	TargetLaneID int
	Position     *int  // nil = append to the end of the target lane
	TargetOrder  []int // optional full ordering of the target lane, applied after the move
}

// Move relocates a card into the target lane and returns the card as stored afterwards.
//
// The position is resolved against the target lane before the card leaves its
// source lane, which is not renumbered. When TargetOrder is given it is applied
// with Reorder on the target lane and may override the position just set.
func Move(ctx context.Context, cards CardStore, lanes LaneLookup, req MoveRequest) (*models.Card, error) {
	if _, err := cards.FindByID(ctx, req.CardID); err != nil {
		return nil, err
	}
	if _, err := lanes.FindByID(ctx, req.TargetLaneID); err != nil {
		return nil, err
	}

	position, err := AssignPosition(ctx, cards, req.TargetLaneID, req.Position)
	if err != nil {
		return nil, fmt.Errorf("failed to assign position: %w", err)
	}

	if err := cards.Relocate(ctx, req.CardID, req.TargetLaneID, position); err != nil {
		return nil, fmt.Errorf("failed to relocate card %d: %w", req.CardID, err)
	}

	if len(req.TargetOrder) > 0 {
		if _, err := Reorder[*models.Card](ctx, cards, req.TargetLaneID, req.TargetOrder); err != nil {
			return nil, err
		}
	}

	return cards.FindByID(ctx, req.CardID)
}
