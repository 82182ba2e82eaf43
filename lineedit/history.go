package lineedit

import (
	"fmt"
	"os"
	"strings"
)

// History is an append-only, insertion-ordered sequence of previously
// submitted lines. Entries are indexed 0..Count()-1 with insertion order
// equal to chronological order; nothing is deduplicated, reordered, or
// truncated within a session.
//
// Persistence is a newline-delimited record file: the whole file is read
// in order when the store is opened, and one record is appended per
// submitted line. Embedded newlines in a command are not representable in
// this form and are not supported.
type History struct {
	entries []string

	// file is the open append target, nil for a memory-only store.
	file *os.File
}

// NewHistory creates an empty, memory-only history store.
func NewHistory() *History {
	return &History{}
}

// OpenHistory loads the history file at path and opens it for appending.
// A missing file is not an error; the store starts empty and the file is
// created on the first append. Empty records are skipped on load. When
// limit is positive, only the newest limit entries are kept in memory.
func OpenHistory(path string, limit int) (*History, error) {
	h := &History{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load history: %w", err)
	}
	if err == nil {
		for _, line := range strings.Split(string(data), "\n") {
			if line != "" {
				h.entries = append(h.entries, line)
			}
		}
		if limit > 0 && len(h.entries) > limit {
			h.entries = h.entries[len(h.entries)-limit:]
		}
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open history for append: %w", err)
	}
	h.file = f
	return h, nil
}

// Append adds a line to the end of the store and, for a file-backed store,
// appends one record to the history file. Callers do not append empty
// lines; ordering of appends is the only consistency requirement.
func (h *History) Append(line string) error {
	h.entries = append(h.entries, line)
	if h.file == nil {
		return nil
	}
	if _, err := fmt.Fprintln(h.file, line); err != nil {
		return fmt.Errorf("append history record: %w", err)
	}
	return nil
}

// Count returns the number of entries in the store.
func (h *History) Count() int {
	return len(h.entries)
}

// Get returns the entry at index i. It fails with *OutOfRangeError when
// i is outside [0, Count()).
func (h *History) Get(i int) (string, error) {
	if i < 0 || i >= len(h.entries) {
		return "", &OutOfRangeError{Index: i, Count: len(h.entries)}
	}
	return h.entries[i], nil
}

// Close releases the persistence file, if any. Idempotent.
func (h *History) Close() error {
	if h.file == nil {
		return nil
	}
	f := h.file
	h.file = nil
	return f.Close()
}
