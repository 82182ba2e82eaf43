// =============================================================================
// repl.go - REPL Loop and Command Dispatch
// =============================================================================
//
// The REPL reads one line at a time, appends non-empty submissions to the
// history store, and routes them to the built-in command handlers. Two input
// paths exist:
//
//   - Interactive: stdin is a terminal. Each line is read through the
//     lineedit.Editor with the terminal in raw mode for the duration of the
//     edit session, restored immediately after.
//   - Non-interactive: stdin is piped. Lines are read with bufio.Scanner and
//     the prompt is printed manually, so scripted use and `echo 'cmd' | gosh`
//     behave sensibly.
//
// =============================================================================

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/gosh-shell/gosh/lineedit"
)

// shell carries the dispatcher's collaborators. Output streams and the
// exit function are injectable so tests can observe behavior without
// touching the real process.
type shell struct {
	history   *lineedit.History
	completer *lineedit.Completer
	out       io.Writer
	errOut    io.Writer
	exit      func(code int)
}

// runREPL runs the main read-dispatch loop until input is exhausted or a
// built-in terminates the process. editor and term may be nil for purely
// non-interactive use (tests, pipes).
func runREPL(sh *shell, editor *lineedit.Editor, term *lineedit.Term, in io.Reader, prompt string) {
	interactive := term != nil && term.IsTerminal()

	var scanner *bufio.Scanner
	if !interactive {
		scanner = bufio.NewScanner(in)
	}

	for {
		var line string

		if interactive {
			// Raw mode only for the duration of one edit session; the
			// dispatched command runs with a normal terminal.
			if err := term.MakeRaw(); err != nil {
				printError(fmt.Sprintf("Terminal unavailable: %v", err))
				return
			}
			l, err := editor.ReadLine(prompt)
			term.Restore()
			if err != nil {
				return
			}
			line = l
		} else {
			fmt.Fprint(sh.out, prompt)
			if !scanner.Scan() {
				return
			}
			line = scanner.Text()
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if err := sh.history.Append(line); err != nil {
			fmt.Fprintf(sh.errOut, "history: %v\n", err)
		}

		sh.dispatch(line)
	}
}
