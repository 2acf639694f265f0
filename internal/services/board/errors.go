package board

import (
	"fmt"

	"github.com/thenoetrevino/notscrum/internal/ordering"
	laneservice "github.com/thenoetrevino/notscrum/internal/services/lane"
)

// Board-related errors
var (
	// Validation errors
	ErrEmptyName             = fmt.Errorf("%w: name cannot be empty", ordering.ErrValidation)
	ErrNameTooLong           = fmt.Errorf("%w: name cannot exceed %d characters", ordering.ErrValidation, MaxNameLength)
	ErrDescriptionTooLong    = fmt.Errorf("%w: description cannot exceed %d characters", ordering.ErrValidation, MaxDescriptionLength)
	ErrInvalidBoardID        = fmt.Errorf("%w: invalid board ID", ordering.ErrValidation)
	ErrInvalidDefaultLaneSet = fmt.Errorf("%w: default lane names must be non-empty and at most %d characters", ordering.ErrValidation, laneservice.MaxNameLength)
)
