package lane

import (
	"fmt"

	"github.com/thenoetrevino/notscrum/internal/ordering"
)

// Lane-related errors
var (
	ErrEmptyName      = fmt.Errorf("%w: name cannot be empty", ordering.ErrValidation)
	ErrNameTooLong    = fmt.Errorf("%w: name cannot exceed %d characters", ordering.ErrValidation, MaxNameLength)
	ErrInvalidLaneID  = fmt.Errorf("%w: invalid lane ID", ordering.ErrValidation)
	ErrInvalidBoardID = fmt.Errorf("%w: invalid board ID", ordering.ErrValidation)
)
