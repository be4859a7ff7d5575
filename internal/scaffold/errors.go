package scaffold

import (
	"errors"
	"fmt"
)

// ErrInvalidTree indicates a tree description that fails validation.
var ErrInvalidTree = errors.New("invalid tree")

// IOError reports a failed filesystem operation during Realize. It
// carries the failing path and the underlying cause; the remainder of
// the traversal is never attempted.
type IOError struct {
	// Op is the operation that failed: "mkdir" or "touch".
	Op string

	// Path is the path the operation was applied to.
	Path string

	// Err is the underlying filesystem error.
	Err error
}

// Error implements the error interface.
func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *IOError) Unwrap() error {
	return e.Err
}
