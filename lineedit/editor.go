package lineedit

import (
	"os"
	"strings"
)

// notNavigating is the history-cursor sentinel for "no navigation in
// progress".
const notNavigating = -1

// Editor is the line-editing state machine. It owns the in-progress
// buffer and the cursor offset, consumes key events from its Terminal,
// consults the Completer and History, and emits screen repairs through
// the same Terminal.
//
// Invariants, re-established before every key read:
//
//	0 <= cursor <= len(buffer)
//	the visible line equals the buffer with the terminal cursor at the
//	cursor offset
//
// Screen writes are best-effort: a failed redraw never aborts the
// session, because the buffer and cursor remain authoritative and the
// next full redraw (history recall or completion disclosure) repairs the
// screen.
type Editor struct {
	term      Terminal
	history   *History
	completer *Completer

	// Exit is invoked when the end-of-input key (Ctrl-D) is read. This is
	// a documented exit path, not a recoverable error: the default
	// terminates the process with a non-zero status. If a substituted
	// Exit returns, ReadLine reports ErrClosed.
	Exit func(code int)

	prompt string
	buf    []byte
	cursor int

	// Navigation state, reset at the start of every session.
	histIndex int
	backup    string
	lastKey   Key
}

// NewEditor creates an Editor over the given terminal and collaborators.
// history and completer may be nil, disabling recall and completion.
func NewEditor(term Terminal, history *History, completer *Completer) *Editor {
	return &Editor{
		term:      term,
		history:   history,
		completer: completer,
		Exit:      os.Exit,
		histIndex: notNavigating,
	}
}

// ReadLine runs one edit session: it prints the prompt, then reads and
// applies key events until Enter submits the line. The returned text does
// not include the newline; the terminal cursor is left on a fresh line.
// The surrounding process must have put the terminal into raw/no-echo
// mode before calling.
func (e *Editor) ReadLine(prompt string) (string, error) {
	e.prompt = prompt
	e.buf = e.buf[:0]
	e.cursor = 0
	e.histIndex = notNavigating
	e.backup = ""
	e.lastKey = KeyNone

	e.emit(prompt)

	for {
		ev, err := e.term.ReadKey()
		if err != nil {
			return "", err
		}

		switch ev.Key {
		case KeyEnter:
			e.emit("\r\n")
			return string(e.buf), nil
		case KeyRune:
			e.insert(ev.Rune)
		case KeyBackspace:
			e.backspace()
		case KeyDelete:
			e.delete()
		case KeyLeft:
			e.moveLeft()
		case KeyRight:
			e.moveRight()
		case KeyUp:
			e.historyBack()
		case KeyDown:
			e.historyForward()
		case KeyTab:
			e.complete()
		case KeyEOF:
			e.Exit(1)
			return "", ErrClosed
		}
		// KeyUnknown and KeyNone fall through: ignored, but still
		// remembered so a Tab after them is a first Tab.
		e.lastKey = ev.Key
	}
}

// emit writes to the screen, best-effort.
func (e *Editor) emit(s string) {
	_ = e.term.WriteString(s)
}

// move shifts the terminal cursor, best-effort.
func (e *Editor) move(delta int) {
	_ = e.term.MoveCursor(delta)
}

// insert places b at the cursor and advances the cursor by one. The
// shifted suffix is re-emitted; the terminal cursor ends one past the
// insertion point, so only the tail past it needs padding back.
func (e *Editor) insert(b byte) {
	e.buf = append(e.buf, 0)
	copy(e.buf[e.cursor+1:], e.buf[e.cursor:])
	e.buf[e.cursor] = b
	e.cursor++

	suffix := string(e.buf[e.cursor-1:])
	e.emit(suffix)
	e.move(-(len(suffix) - 1))
}

// backspace removes the character before the cursor. No-op at offset 0.
// The re-emitted suffix carries one trailing space to erase the stale
// tail character.
func (e *Editor) backspace() {
	if e.cursor == 0 {
		return
	}
	e.buf = append(e.buf[:e.cursor-1], e.buf[e.cursor:]...)
	e.cursor--

	e.move(-1)
	suffix := string(e.buf[e.cursor:])
	e.emit(suffix + " ")
	e.move(-(len(suffix) + 1))
}

// delete removes the character under the cursor. No-op at end of line.
func (e *Editor) delete() {
	if e.cursor >= len(e.buf) {
		return
	}
	e.buf = append(e.buf[:e.cursor], e.buf[e.cursor+1:]...)

	suffix := string(e.buf[e.cursor:])
	e.emit(suffix + " ")
	e.move(-(len(suffix) + 1))
}

func (e *Editor) moveLeft() {
	if e.cursor == 0 {
		return
	}
	e.cursor--
	e.move(-1)
}

// moveRight advances the cursor by re-emitting the character being passed
// over, which moves the terminal cursor without reprinting the line.
func (e *Editor) moveRight() {
	if e.cursor >= len(e.buf) {
		return
	}
	e.cursor++
	e.emit(string(e.buf[e.cursor-1]))
}

// historyBack recalls the previous history entry. On the first Up of a
// session the in-progress line is backed up and the history cursor starts
// at the newest entry; further presses step toward index 0, clamped with
// no wraparound.
func (e *Editor) historyBack() {
	if e.history == nil || e.history.Count() == 0 {
		return
	}
	if e.histIndex == notNavigating {
		e.backup = string(e.buf)
		e.histIndex = e.history.Count() - 1
	} else if e.histIndex > 0 {
		e.histIndex--
	}
	entry, err := e.history.Get(e.histIndex)
	if err != nil {
		return
	}
	e.replaceLine(entry)
}

// historyForward steps toward the newest entry. Moving past it leaves
// navigation entirely: the backup taken when navigation began is
// restored. A Down press while not navigating is a no-op.
func (e *Editor) historyForward() {
	if e.histIndex == notNavigating {
		return
	}
	var entry string
	if e.histIndex < e.history.Count()-1 {
		e.histIndex++
		entry, _ = e.history.Get(e.histIndex)
	} else {
		e.histIndex = notNavigating
		entry = e.backup
	}
	e.replaceLine(entry)
}

// replaceLine substitutes the buffer wholesale and moves the cursor to
// its end. Screen repair is a full-line clear (overwrite with spaces,
// backspace to origin) followed by a redraw.
func (e *Editor) replaceLine(s string) {
	e.move(-e.cursor)
	e.emit(strings.Repeat(" ", len(e.buf)))
	e.move(-len(e.buf))

	e.buf = append(e.buf[:0], s...)
	e.cursor = len(e.buf)
	e.emit(s)
}

// complete handles a Tab press. A single Tab is a quiet probe: it applies
// the candidate only when it is unambiguous and stays silent when several
// match. A second consecutive Tab discloses the ambiguous candidates on a
// fresh line. Zero candidates ring the bell.
func (e *Editor) complete() {
	word, start := e.currentWord()
	var candidates []string
	if e.completer != nil {
		candidates = e.completer.Complete(word)
	}

	switch {
	case e.lastKey == KeyTab:
		if len(candidates) > 1 {
			e.listCandidates(candidates)
		}
	case len(candidates) > 0 && ExactMatches(candidates, word) == 1:
		e.replaceWord(start, candidates[0])
	case len(candidates) == 0:
		_ = e.term.Bell()
	}
}

// currentWord isolates the word under completion: the buffer content
// after the last space before the cursor, or the whole buffer when no
// space exists. start is the buffer offset where the word begins.
func (e *Editor) currentWord() (word string, start int) {
	i := strings.LastIndexByte(string(e.buf[:e.cursor]), ' ')
	return string(e.buf[i+1:]), i + 1
}

// replaceWord splices candidate over the buffer from start and moves the
// cursor to the end of the line, clearing and redrawing the whole line.
func (e *Editor) replaceWord(start int, candidate string) {
	e.move(-e.cursor)
	e.emit(strings.Repeat(" ", len(e.buf)))
	e.move(-len(e.buf))

	e.buf = append(e.buf[:start], candidate...)
	e.cursor = len(e.buf)
	e.emit(string(e.buf))
}

// listCandidates prints the ambiguous candidates space-separated on a
// fresh line, then redraws the prompt and the unmodified buffer with the
// cursor restored to its prior offset.
func (e *Editor) listCandidates(candidates []string) {
	e.emit("\r\n")
	e.emit(strings.Join(candidates, "    "))
	e.emit("\r\n")
	e.emit(e.prompt)
	e.emit(string(e.buf))
	e.move(-(len(e.buf) - e.cursor))
}

// Line returns the current buffer contents. Exposed for the shell's
// diagnostics; the buffer is owned by the running session.
func (e *Editor) Line() string {
	return string(e.buf)
}

// Cursor returns the current cursor offset into the buffer.
func (e *Editor) Cursor() int {
	return e.cursor
}
