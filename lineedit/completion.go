package lineedit

import (
	"os"
	"strings"
)

// Completer produces ranked completion candidates for a partial word from
// two tiers: the fixed built-in command list first, then the entries of
// the completion directory. The first tier that yields any candidate wins;
// the second tier is never consulted once the first matches.
type Completer struct {
	commands []string

	// Dir is the directory consulted for the second tier. Empty means the
	// process working directory, resolved at each call.
	Dir string
}

// NewCompleter creates a completion source over the given fixed command
// list. The list's order is preserved in the returned candidates.
func NewCompleter(commands []string) *Completer {
	return &Completer{commands: commands}
}

// Complete returns the candidates for partial. Matching is a byte-wise,
// case-sensitive prefix comparison. Directory entries whose names begin
// with the hidden-file marker '.' are excluded from the second tier. An
// unreadable directory yields no second-tier candidates rather than an
// error; the candidate set is ephemeral and recomputed on every call.
func (c *Completer) Complete(partial string) []string {
	var results []string
	for _, cmd := range c.commands {
		if strings.HasPrefix(cmd, partial) {
			results = append(results, cmd)
		}
	}
	if len(results) > 0 {
		return results
	}

	dir := c.Dir
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil
		}
		dir = cwd
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if strings.HasPrefix(name, partial) {
			results = append(results, name)
		}
	}
	return results
}

// ExactMatches counts the candidates prefixed by the full partial string.
// It is the pure disambiguation function behind single-Tab completion: a
// count of exactly one selects the unambiguous candidate.
func ExactMatches(candidates []string, partial string) int {
	n := 0
	for _, cand := range candidates {
		if strings.HasPrefix(cand, partial) {
			n++
		}
	}
	return n
}
