// =============================================================================
// repl_test.go - Tests for the Non-Interactive REPL Path (repl.go)
// =============================================================================

package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunREPLDispatchesPipedInput(t *testing.T) {
	sh, out, errOut, _ := newTestShell()
	in := strings.NewReader("echo hello\necho world\n")

	runREPL(sh, nil, nil, in, "$ ")

	// Non-interactive mode prints the prompt itself, once per read attempt
	// including the final one that hits EOF.
	assert.Equal(t, "$ hello\n$ world\n$ ", out.String())
	assert.Empty(t, errOut.String())
}

func TestRunREPLSkipsBlankLines(t *testing.T) {
	sh, out, _, _ := newTestShell()
	in := strings.NewReader("\n   \necho ok\n")

	runREPL(sh, nil, nil, in, "> ")

	assert.Equal(t, "> > > ok\n> ", out.String())
	assert.Equal(t, 1, sh.history.Count())
}

func TestRunREPLRecordsHistory(t *testing.T) {
	sh, _, _, _ := newTestShell()
	in := strings.NewReader("pwd\nls /no/such/dir\n")

	runREPL(sh, nil, nil, in, "$ ")

	require.Equal(t, 2, sh.history.Count())
	first, err := sh.history.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "pwd", first)
	second, err := sh.history.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "ls /no/such/dir", second)
}

func TestRunREPLTrimsSubmittedLines(t *testing.T) {
	sh, out, _, _ := newTestShell()
	in := strings.NewReader("   echo padded   \n")

	runREPL(sh, nil, nil, in, "$ ")

	assert.Contains(t, out.String(), "padded\n")
	entry, err := sh.history.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "echo padded", entry)
}

func TestRunREPLStopsAtEOF(t *testing.T) {
	sh, out, _, _ := newTestShell()

	runREPL(sh, nil, nil, strings.NewReader(""), "$ ")

	assert.Equal(t, "$ ", out.String())
	assert.Equal(t, 0, sh.history.Count())
}
