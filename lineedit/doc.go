// Package lineedit implements the interactive line-editing engine used by
// the gosh shell: a raw-keystroke state machine that turns terminal input
// into a committed line of text while keeping the visible screen consistent
// with the internal buffer after every key.
//
// # Components
//
// The package is built from four collaborators, leaves first:
//
//   - Completer: two-tier prefix completion (built-in command names, then
//     directory entries), recomputed on every Tab press.
//   - History: an append-only, insertion-ordered sequence of previously
//     submitted lines with optional file-backed persistence.
//   - Term: the terminal boundary. Reads one symbolic KeyEvent at a time
//     (collapsing multi-byte escape sequences) and performs cursor-relative
//     screen writes.
//   - Editor: the core state machine. Owns the buffer, the cursor offset,
//     and transient navigation state; consumes key events, consults the
//     Completer and History, and emits screen repairs through the Terminal.
//
// # Basic Usage
//
// Create the collaborators, put the terminal into raw mode, and read lines:
//
//	history, err := lineedit.OpenHistory(historyPath, 500)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer history.Close()
//
//	completer := lineedit.NewCompleter([]string{"echo", "cd", "pwd"})
//	term := lineedit.NewTerm(os.Stdin, os.Stdout)
//	editor := lineedit.NewEditor(term, history, completer)
//
//	for {
//	    if err := term.MakeRaw(); err != nil {
//	        log.Fatal(err)
//	    }
//	    line, err := editor.ReadLine("$ ")
//	    term.Restore()
//	    if err != nil {
//	        break
//	    }
//	    fmt.Println("got:", line)
//	}
//
// # Key Handling
//
// Enter submits the line. Backspace and Delete remove around the cursor,
// the left and right arrows move within the line, and the up and down
// arrows recall history (the in-progress line is backed up when navigation
// begins and restored when it returns past the newest entry). A single Tab
// applies an unambiguous completion; a second consecutive Tab lists the
// ambiguous candidates. Ctrl-D is the end-of-input signal and invokes the
// Editor's Exit path, which by default terminates the process with a
// non-zero status.
//
// # Concurrency
//
// The engine is single-threaded and blocking by design: one key event is
// processed to completion (buffer mutation plus screen repair) before the
// next is read. Exactly one edit session is assumed to be active at a time.
package lineedit
