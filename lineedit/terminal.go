package lineedit

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Terminal is the boundary the Editor drives: blocking symbolic key input
// on one side, cursor-relative screen writes on the other. Term is the
// production implementation; tests substitute scripted fakes.
type Terminal interface {
	// ReadKey blocks until one logical key is available.
	ReadKey() (KeyEvent, error)

	// WriteString echoes text at the current cursor position.
	WriteString(s string) error

	// MoveCursor moves the terminal cursor delta columns within the
	// current line: negative is left, positive is right, zero is a no-op.
	MoveCursor(delta int) error

	// Bell emits an audible/visual alert.
	Bell() error
}

// Term adapts a raw-mode terminal to the Terminal interface.
//
// Input byte table (decoded by ReadKey):
//
//	0x0D CR, 0x0A LF      -> KeyEnter
//	0x7F DEL, 0x08 BS     -> KeyBackspace
//	0x09 HT               -> KeyTab
//	0x04 EOT (Ctrl-D)     -> KeyEOF
//	0x1B '[' 'A'|'B'|'C'|'D' (CSI cursor) and
//	0x1B 'O' 'A'|'B'|'C'|'D' (SS3 application mode)
//	                      -> KeyUp / KeyDown / KeyRight / KeyLeft
//	0x1B '[' '3' '~'      -> KeyDelete
//	0x20..0x7E            -> KeyRune (literal byte)
//	anything else         -> KeyUnknown
//
// The adapter assumes the underlying terminal performs no buffering or
// echo of its own; raw/no-echo mode must be established with MakeRaw
// before an edit session starts. Output uses BS for leftward cursor
// motion, CSI n C for rightward motion, and BEL for the alert.
type Term struct {
	in  *bufio.Reader
	out io.Writer

	// fd is the input file descriptor, or -1 when the input is not an
	// *os.File (tests, pipes wrapped in plain readers).
	fd    int
	saved *term.State
}

// NewTerm creates a terminal adapter reading keys from in and writing
// screen updates to out. Raw-mode control (MakeRaw/Restore/IsTerminal)
// is available only when in is an *os.File.
func NewTerm(in io.Reader, out io.Writer) *Term {
	t := &Term{
		in:  bufio.NewReader(in),
		out: out,
		fd:  -1,
	}
	if f, ok := in.(*os.File); ok {
		t.fd = int(f.Fd())
	}
	return t
}

// IsTerminal reports whether the input is an interactive terminal.
func (t *Term) IsTerminal() bool {
	return t.fd >= 0 && term.IsTerminal(t.fd)
}

// MakeRaw puts the input terminal into raw/no-echo mode. The previous
// state is retained so Restore can undo it.
func (t *Term) MakeRaw() error {
	if t.fd < 0 {
		return ErrNotTerminal
	}
	state, err := term.MakeRaw(t.fd)
	if err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	t.saved = state
	return nil
}

// Restore returns the terminal to the state captured by the last MakeRaw.
// Safe to call when no raw state is held.
func (t *Term) Restore() error {
	if t.saved == nil {
		return nil
	}
	state := t.saved
	t.saved = nil
	if err := term.Restore(t.fd, state); err != nil {
		return fmt.Errorf("restore terminal: %w", err)
	}
	return nil
}

// ReadKey reads and decodes one logical key. Multi-byte escape sequences
// are consumed whole and collapsed into a single symbolic event. Exhausted
// input is reported as KeyEOF, matching the Ctrl-D signal.
func (t *Term) ReadKey() (KeyEvent, error) {
	b, err := t.in.ReadByte()
	if err != nil {
		if err == io.EOF {
			return KeyEvent{Key: KeyEOF}, nil
		}
		return KeyEvent{}, fmt.Errorf("read key: %w", err)
	}

	switch {
	case b == '\r' || b == '\n':
		return KeyEvent{Key: KeyEnter}, nil
	case b == 0x7F || b == '\b':
		return KeyEvent{Key: KeyBackspace}, nil
	case b == '\t':
		return KeyEvent{Key: KeyTab}, nil
	case b == 0x04:
		return KeyEvent{Key: KeyEOF}, nil
	case b == 0x1B:
		return t.readEscape()
	case b >= 0x20 && b <= 0x7E:
		return KeyEvent{Key: KeyRune, Rune: b}, nil
	default:
		return KeyEvent{Key: KeyUnknown}, nil
	}
}

// readEscape consumes the remainder of an escape sequence that started
// with ESC. Sequences the decoder does not recognize collapse into a
// single KeyUnknown; truncated sequences (end of input mid-sequence) do
// the same rather than surfacing an error.
func (t *Term) readEscape() (KeyEvent, error) {
	intro, err := t.in.ReadByte()
	if err != nil || (intro != '[' && intro != 'O') {
		return KeyEvent{Key: KeyUnknown}, nil
	}

	b, err := t.in.ReadByte()
	if err != nil {
		return KeyEvent{Key: KeyUnknown}, nil
	}

	switch b {
	case 'A':
		return KeyEvent{Key: KeyUp}, nil
	case 'B':
		return KeyEvent{Key: KeyDown}, nil
	case 'C':
		return KeyEvent{Key: KeyRight}, nil
	case 'D':
		return KeyEvent{Key: KeyLeft}, nil
	case '3':
		if intro == '[' {
			if tilde, err := t.in.ReadByte(); err == nil && tilde == '~' {
				return KeyEvent{Key: KeyDelete}, nil
			}
		}
	}
	return KeyEvent{Key: KeyUnknown}, nil
}

// WriteString writes text at the current cursor position.
func (t *Term) WriteString(s string) error {
	if _, err := io.WriteString(t.out, s); err != nil {
		return fmt.Errorf("terminal write: %w", err)
	}
	return nil
}

// MoveCursor moves the cursor delta columns within the current line.
func (t *Term) MoveCursor(delta int) error {
	switch {
	case delta < 0:
		return t.WriteString(strings.Repeat("\b", -delta))
	case delta > 0:
		return t.WriteString(fmt.Sprintf("\x1b[%dC", delta))
	default:
		return nil
	}
}

// Bell emits the terminal alert.
func (t *Term) Bell() error {
	return t.WriteString("\a")
}
