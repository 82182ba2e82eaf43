// =============================================================================
// redirect.go - Output Redirection Parsing
// =============================================================================
//
// Built-in commands that produce output (echo, ls, cat) support redirecting
// it to a file with the operators >, >>, 1>, and 1>>. Parsing is isolated
// here: the dispatcher splits a raw input line into the command portion and
// a structured (target path, append mode) pair before any command handler
// runs, so the handlers only ever see an io.Writer.
//
// =============================================================================

package main

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// redirection is a parsed output-redirection target.
type redirection struct {
	path     string
	appendTo bool
}

// redirectOperators in match order. Longer operators first so ">>" is
// never misread as ">" followed by a stray ">".
var redirectOperators = []struct {
	token    string
	appendTo bool
}{
	{"1>>", true},
	{">>", true},
	{"1>", false},
	{">", false},
}

// parseRedirect splits input into the command portion and an optional
// redirection. The scan tracks the same quoting states as echo's argument
// expansion, so a > inside a quoted or escaped span is ordinary text. The
// first unquoted operator wins; everything after it is the target path.
// Returns a nil redirection when the line has none.
func parseRedirect(input string) (string, *redirection) {
	var inSingle, inDouble, escaped bool

	for i := 0; i < len(input); i++ {
		ch := input[i]
		switch {
		case escaped:
			escaped = false
		case ch == '\\' && !inSingle:
			escaped = true
		case ch == '\'' && !inDouble:
			inSingle = !inSingle
		case ch == '"' && !inSingle:
			inDouble = !inDouble
		case (ch == '>' || ch == '1') && !inSingle && !inDouble:
			for _, op := range redirectOperators {
				if strings.HasPrefix(input[i:], op.token) {
					cmd := strings.TrimSpace(input[:i])
					path := strings.TrimSpace(input[i+len(op.token):])
					return cmd, &redirection{path: path, appendTo: op.appendTo}
				}
			}
		}
	}
	return input, nil
}

// open resolves the redirection target to a writable file. Truncates for
// > and 1>, appends for >> and 1>>.
func (r *redirection) open() (io.WriteCloser, error) {
	if r.path == "" {
		return nil, fmt.Errorf("redirect: missing target file")
	}
	flags := os.O_CREATE | os.O_WRONLY
	if r.appendTo {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}
	f, err := os.OpenFile(r.path, flags, 0o644)
	if err != nil {
		return nil, fmt.Errorf("redirect: %w", err)
	}
	return f, nil
}
