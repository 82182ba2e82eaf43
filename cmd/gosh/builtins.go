// =============================================================================
// builtins.go - Built-in Command Handlers
// =============================================================================
//
// All commands the shell understands are built-ins: echo, cd, pwd, ls, cat,
// type, history, and exit. Each handler receives the argument portion of
// the input line plus the (possibly redirected) output writer; diagnostics
// always go to the shell's error stream regardless of redirection.
//
// =============================================================================

package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"slices"
	"strconv"
	"strings"

	"github.com/gosh-shell/gosh/lineedit"
)

// builtinNames is the fixed built-in command list. It doubles as the first
// completion tier, so its order is the order candidates are offered in.
var builtinNames = []string{"history", "cat", "ls", "echo", "type", "exit", "pwd", "cd"}

// isBuiltin reports whether name is a built-in command.
func isBuiltin(name string) bool {
	return slices.Contains(builtinNames, name)
}

// splitCommand separates the command name from its argument text.
func splitCommand(input string) (name, args string) {
	name, args, _ = strings.Cut(input, " ")
	return name, strings.TrimSpace(args)
}

// dispatch routes one submitted line to its handler. Redirection is parsed
// up front so handlers only ever see a ready io.Writer.
func (sh *shell) dispatch(input string) {
	cmdPart, redir := parseRedirect(input)
	name, args := splitCommand(cmdPart)
	if name == "" {
		return
	}
	if !isBuiltin(name) {
		fmt.Fprintf(sh.errOut, "%s: command not found\n", name)
		return
	}

	w := sh.out
	var closer io.Closer
	if redir != nil {
		f, err := redir.open()
		if err != nil {
			fmt.Fprintf(sh.errOut, "%s: %v\n", name, err)
			return
		}
		w = f
		closer = f
	}

	switch name {
	case "echo":
		sh.echo(args, w)
	case "cd":
		sh.cd(args)
	case "pwd":
		sh.pwd(w)
	case "ls":
		sh.ls(args, w)
	case "cat":
		sh.cat(args, w)
	case "type":
		sh.typeOf(args, w)
	case "history":
		sh.showHistory(args, w)
	case "exit":
		sh.exitShell(args)
	}

	if closer != nil {
		closer.Close()
	}
}

// =============================================================================
// echo
// =============================================================================

// echo prints its argument text after quote processing.
func (sh *shell) echo(args string, w io.Writer) {
	fmt.Fprintln(w, expandEchoArgs(args))
}

// expandEchoArgs applies the shell's quoting rules to echo's argument text:
// single quotes are literal spans, double quotes allow backslash escapes,
// an unquoted backslash escapes the next character, and runs of unquoted
// spaces collapse to one.
func expandEchoArgs(s string) string {
	const (
		unquoted = iota
		singleQuoted
		doubleQuoted
	)

	var b strings.Builder
	state := unquoted
	escaped := false
	var prev byte

	for i := 0; i < len(s); i++ {
		ch := s[i]

		switch state {
		case singleQuoted:
			if ch == '\'' {
				state = unquoted
			} else {
				b.WriteByte(ch)
			}

		case doubleQuoted:
			switch {
			case escaped:
				b.WriteByte(ch)
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				state = unquoted
			default:
				b.WriteByte(ch)
			}

		default: // unquoted
			switch {
			case escaped:
				b.WriteByte(ch)
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '\'':
				state = singleQuoted
			case ch == '"':
				state = doubleQuoted
			case ch == ' ':
				if prev != ' ' {
					b.WriteByte(' ')
				}
			default:
				b.WriteByte(ch)
			}
		}

		prev = ch
	}

	return b.String()
}

// =============================================================================
// cd / pwd
// =============================================================================

// cd changes the working directory. "~" expands to the user's home.
func (sh *shell) cd(args string) {
	path := strings.TrimSpace(args)
	if path == "~" || path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(sh.errOut, "cd: HOME not set")
			return
		}
		path = home
	}
	if err := os.Chdir(path); err != nil {
		fmt.Fprintf(sh.errOut, "cd: %s: No such file or directory\n", path)
	}
}

// pwd prints the current working directory.
func (sh *shell) pwd(w io.Writer) {
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(sh.errOut, "pwd: %v\n", err)
		return
	}
	fmt.Fprintln(w, cwd)
}

// =============================================================================
// ls / cat
// =============================================================================

// ls lists directory entries, skipping names that begin with the
// hidden-file marker.
func (sh *shell) ls(args string, w io.Writer) {
	path := strings.TrimSpace(args)
	if path == "" {
		path = "."
	}
	entries, err := os.ReadDir(path)
	if err != nil {
		fmt.Fprintf(sh.errOut, "ls: %s: No such file or directory\n", path)
		return
	}
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		fmt.Fprintln(w, name)
	}
}

// cat writes the contents of a file, ensuring a trailing newline.
func (sh *shell) cat(args string, w io.Writer) {
	file := strings.TrimSpace(args)
	if file == "" {
		fmt.Fprintln(sh.errOut, "cat: missing file operand")
		return
	}
	data, err := os.ReadFile(file)
	if err != nil {
		fmt.Fprintf(sh.errOut, "cat: %s: No such file or directory\n", file)
		return
	}
	w.Write(data)
	if len(data) > 0 && data[len(data)-1] != '\n' {
		io.WriteString(w, "\n")
	}
}

// =============================================================================
// type
// =============================================================================

// typeOf reports what a command name resolves to: a shell built-in, an
// executable on PATH, or nothing.
func (sh *shell) typeOf(args string, w io.Writer) {
	name := strings.TrimSpace(args)
	if name == "" {
		fmt.Fprintln(sh.errOut, "type: missing command name")
		return
	}
	if isBuiltin(name) {
		fmt.Fprintf(w, "%s is a shell builtin\n", name)
		return
	}
	if path, err := exec.LookPath(name); err == nil {
		fmt.Fprintf(w, "%s is %s\n", name, path)
		return
	}
	fmt.Fprintf(w, "%s: not found\n", name)
}

// =============================================================================
// history
// =============================================================================

// showHistory prints the numbered history, oldest first. With a numeric
// argument it prints only the last n entries; an n outside [1, count] is
// the out-of-range condition and is reported without touching any state.
func (sh *shell) showHistory(args string, w io.Writer) {
	count := sh.history.Count()
	start := 0

	if arg := strings.TrimSpace(args); arg != "" {
		n, err := strconv.Atoi(arg)
		if err != nil {
			fmt.Fprintf(sh.errOut, "history: invalid count: %s\n", arg)
			return
		}
		if n < 1 || n > count {
			rangeErr := &lineedit.OutOfRangeError{Index: n, Count: count}
			fmt.Fprintf(sh.errOut, "history: %v\n", rangeErr)
			return
		}
		start = count - n
	}

	for i := start; i < count; i++ {
		entry, err := sh.history.Get(i)
		if err != nil {
			fmt.Fprintf(sh.errOut, "history: %v\n", err)
			return
		}
		fmt.Fprintf(w, "%d. %s\n", i+1, entry)
	}
}

// =============================================================================
// exit
// =============================================================================

// exitShell terminates the shell with the given status (default 0).
func (sh *shell) exitShell(args string) {
	code := 0
	if arg := strings.TrimSpace(args); arg != "" {
		n, err := strconv.Atoi(arg)
		if err != nil {
			fmt.Fprintf(sh.errOut, "exit: invalid status: %s\n", arg)
			return
		}
		code = n
	}
	sh.exit(code)
}
