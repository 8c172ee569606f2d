package fixture

import (
	"errors"
	"fmt"
)

// InvalidArgumentError indicates a request field violates its constraints
type InvalidArgumentError struct {
	Field   string // Field that failed validation (e.g., "count")
	Message string // Descriptive message
}

// Error implements the error interface
func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %s: %s", e.Field, e.Message)
}

// IsInvalidArgument checks if an error is an InvalidArgumentError
func IsInvalidArgument(err error) bool {
	var invalidErr *InvalidArgumentError
	return errors.As(err, &invalidErr)
}

// IOError indicates directory creation or a file write failed
type IOError struct {
	Op   string // Operation that failed (e.g., "create", "write")
	Path string // Path the operation was applied to
	Err  error  // Underlying error
}

// Error implements the error interface
func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error
func (e *IOError) Unwrap() error {
	return e.Err
}

// IsIOError checks if an error is an IOError
func IsIOError(err error) bool {
	var ioErr *IOError
	return errors.As(err, &ioErr)
}
