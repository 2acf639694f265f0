package card

import (
	"fmt"

	"github.com/thenoetrevino/notscrum/internal/ordering"
)

// Card-related errors
var (
	// Validation errors
	ErrEmptyTitle    = fmt.Errorf("%w: title cannot be empty", ordering.ErrValidation)
	ErrTitleTooLong  = fmt.Errorf("%w: title cannot exceed %d characters", ordering.ErrValidation, MaxTitleLength)
	ErrColorTooLong  = fmt.Errorf("%w: color cannot exceed %d characters", ordering.ErrValidation, MaxColorLength)
	ErrInvalidCardID = fmt.Errorf("%w: invalid card ID", ordering.ErrValidation)
	ErrInvalidLaneID = fmt.Errorf("%w: invalid lane ID", ordering.ErrValidation)
)
