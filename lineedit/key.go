package lineedit

// Key identifies the symbolic class of a key event. The Editor's state
// machine switches on Key values only; raw byte sequences are decoded once
// at the terminal boundary and never inspected past it.
type Key int

const (
	// KeyNone is the sentinel for "no key seen yet". A fresh edit session
	// starts with its last-key memory set to KeyNone, so the very first
	// Tab press can never be mistaken for a double-tab.
	KeyNone Key = iota

	// KeyRune is a printable character; the Rune field of the KeyEvent
	// carries the byte.
	KeyRune

	// KeyEnter submits the line.
	KeyEnter

	// KeyBackspace deletes the character before the cursor.
	KeyBackspace

	// KeyDelete deletes the character under the cursor.
	KeyDelete

	// KeyTab requests completion of the current word.
	KeyTab

	// KeyUp and KeyDown navigate history.
	KeyUp
	KeyDown

	// KeyLeft and KeyRight move the cursor within the line.
	KeyLeft
	KeyRight

	// KeyEOF is the end-of-input signal (Ctrl-D or exhausted input).
	KeyEOF

	// KeyUnknown is any byte or escape sequence the decoder does not
	// recognize. The Editor ignores it.
	KeyUnknown
)

// KeyEvent is one logical keystroke as produced by Term.ReadKey.
type KeyEvent struct {
	Key  Key
	Rune byte // set only for KeyRune
}

// String returns a human-readable name for the key class.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyRune:
		return "Rune"
	case KeyEnter:
		return "Enter"
	case KeyBackspace:
		return "Backspace"
	case KeyDelete:
		return "Delete"
	case KeyTab:
		return "Tab"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyEOF:
		return "EOF"
	default:
		return "Unknown"
	}
}
