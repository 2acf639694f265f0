package ordering

import (
	"context"
	"fmt"
)

// Reorder rewrites positions in scopeID so that ids[i] ends up at position i,
// then returns every item of the scope sorted by position.
//
// The whole list is validated before the first write: unknown IDs fail with
// ErrNotFound, items of another scope with ErrInvalidScope, and an empty list
// or a repeated ID with ErrValidation. Items of the scope that are missing from
// ids keep their old positions and may now tie with reassigned ones.
func Reorder[T Item](ctx context.Context, store Collection[T], scopeID int, ids []int) ([]T, error) {
	if err := validateOrder(ctx, store, scopeID, ids); err != nil {
		return nil, err
	}

	for position, id := range ids {
		if err := store.SetPosition(ctx, id, position); err != nil {
			return nil, fmt.Errorf("failed to set position of %d: %w", id, err)
		}
	}

	return store.FindByScope(ctx, scopeID)
}

func validateOrder[T Item](ctx context.Context, store Collection[T], scopeID int, ids []int) error {
	if len(ids) == 0 {
		return fmt.Errorf("%w: ordering list is empty", ErrValidation)
	}

	seen := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: id %d appears more than once in ordering list", ErrValidation, id)
		}
		seen[id] = struct{}{}

		item, err := store.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if item.GetScopeID() != scopeID {
			return fmt.Errorf("%w: item %d belongs to %d, not %d", ErrInvalidScope, id, item.GetScopeID(), scopeID)
		}
	}
	return nil
}
