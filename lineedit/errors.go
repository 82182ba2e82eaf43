package lineedit

import (
	"errors"
	"fmt"
)

// Sentinel errors for the line-editing engine.
var (
	// ErrClosed indicates the edit session ended on the end-of-input key
	// and the Editor's Exit function returned instead of terminating the
	// process.
	ErrClosed = errors.New("input closed")

	// ErrNotTerminal indicates a raw-mode operation was attempted on an
	// input that is not backed by a terminal file descriptor.
	ErrNotTerminal = errors.New("input is not a terminal")
)

// OutOfRangeError reports a history index outside the valid range
// [0, Count).
type OutOfRangeError struct {
	Index int // the requested index
	Count int // the number of entries in the store
}

// Error implements the error interface.
func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("history index %d out of range [0, %d)", e.Index, e.Count)
}
