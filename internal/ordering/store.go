// Package ordering implements position assignment, reordering and card moves
// for lanes within a board and cards within a lane.
//
// The engines never open transactions themselves. Callers bind the stores to a
// unit of work (see database.WithTx) so each logical operation commits once.
package ordering

import (
	"context"

	"github.com/thenoetrevino/notscrum/internal/models"
)

// Item is a positioned record inside a parent scope (a lane in a board, a card in a lane)
type Item interface {
	GetID() int
	GetScopeID() int
	GetPosition() int
}

// PositionSource answers the highest position currently used in a scope.
// ok is false when the scope holds no items.
type PositionSource interface {
	MaxPosition(ctx context.Context, scopeID int) (highest int, ok bool, err error)
}

// Collection is the subset of the collection store the engines need for one kind of item.
// FindByID must return an error wrapping ErrNotFound for unknown IDs, and FindByScope
// must return items sorted by position, then ID.
type Collection[T Item] interface {
	PositionSource
	FindByID(ctx context.Context, id int) (T, error)
	FindByScope(ctx context.Context, scopeID int) ([]T, error)
	SetPosition(ctx context.Context, id, position int) error
}

// CardStore is the card collection plus the relocation write used by Move
type CardStore interface {
	Collection[*models.Card]
	Relocate(ctx context.Context, cardID, laneID, position int) error
}

// LaneLookup resolves a lane by ID
type LaneLookup interface {
	FindByID(ctx context.Context, id int) (*models.Lane, error)
}
