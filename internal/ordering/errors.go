package ordering

import "errors"

// Error taxonomy shared by the engines, the services and the HTTP layer.
// Callers match with errors.Is; messages carry the offending IDs.
var (
	// ErrNotFound indicates a referenced board, lane or card does not exist
	ErrNotFound = errors.New("not found")

	// ErrValidation indicates a missing field, a malformed ordering list or an out of range value
	ErrValidation = errors.New("validation error")

	// ErrInvalidScope indicates an item does not belong to the stated parent scope
	ErrInvalidScope = errors.New("invalid scope")
)
