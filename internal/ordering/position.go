package ordering

import "context"

// EmptyScopePosition is the position given to the first item of an empty scope.
// Positions are 0-based so a freshly reordered scope and a freshly filled scope agree.
const EmptyScopePosition = 0

// AssignPosition returns the position to store for a new item in scopeID.
//
// An explicit position is returned verbatim: siblings are not shifted and
// collisions are not resolved. Without one the item is appended after the
// current maximum. The read and the caller's insert are not atomic; two
// concurrent callers outside a shared transaction can compute the same value.
func AssignPosition(ctx context.Context, src PositionSource, scopeID int, explicit *int) (int, error) {
	if explicit != nil {
		return *explicit, nil
	}

	highest, ok, err := src.MaxPosition(ctx, scopeID)
	if err != nil {
		return 0, err
	}
	if !ok {
		return EmptyScopePosition, nil
	}
	return highest + 1, nil
}
