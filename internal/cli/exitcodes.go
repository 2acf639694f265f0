package cli

import (
	"errors"

	"github.com/thenoetrevino/notscrum/internal/ordering"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags or unknown commands.
	ExitUsage = 2

	// ExitNotFound indicates a requested board, lane or card was not found.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed input data, such as a seed file.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Empty or over-long names, malformed ordering lists
	// and items that belong to another lane or board.
	ExitValidation = 5
)

// ExitCode maps an error onto the process exit code
func ExitCode(err error) int {
	var usage *UsageError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &usage):
		return ExitUsage
	case errors.Is(err, ordering.ErrNotFound):
		return ExitNotFound
	case errors.Is(err, ordering.ErrValidation), errors.Is(err, ordering.ErrInvalidScope):
		return ExitValidation
	default:
		return ExitError
	}
}

// ErrorCode returns the machine-readable code reported in JSON errors
func ErrorCode(err error) string {
	var usage *UsageError
	switch {
	case errors.As(err, &usage):
		return "USAGE"
	case errors.Is(err, ordering.ErrNotFound):
		return "NOT_FOUND"
	case errors.Is(err, ordering.ErrInvalidScope):
		return "INVALID_SCOPE"
	case errors.Is(err, ordering.ErrValidation):
		return "VALIDATION_ERROR"
	default:
		return "ERROR"
	}
}

// UsageError marks a command line mistake
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string { return e.Msg }
