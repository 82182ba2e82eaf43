// =============================================================================
// redirect_test.go - Tests for Output Redirection Parsing (redirect.go)
// =============================================================================

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRedirectOperators(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantCmd    string
		wantPath   string
		wantAppend bool
	}{
		{"truncate", "echo hi > out.txt", "echo hi", "out.txt", false},
		{"append", "echo hi >> out.txt", "echo hi", "out.txt", true},
		{"explicit fd truncate", "ls 1> listing", "ls", "listing", false},
		{"explicit fd append", "ls 1>> listing", "ls", "listing", true},
		{"no spaces", "echo hi>out.txt", "echo hi", "out.txt", false},
		{"extra spaces", "cat f   >>   log", "cat f", "log", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, redir := parseRedirect(tt.input)
			require.NotNil(t, redir)
			assert.Equal(t, tt.wantCmd, cmd)
			assert.Equal(t, tt.wantPath, redir.path)
			assert.Equal(t, tt.wantAppend, redir.appendTo)
		})
	}
}

func TestParseRedirectWithoutOperator(t *testing.T) {
	cmd, redir := parseRedirect("echo plain text")
	assert.Equal(t, "echo plain text", cmd)
	assert.Nil(t, redir)
}

func TestParseRedirectIgnoresQuotedOperators(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"single quotes", "echo '5 > 3'"},
		{"double quotes", `echo "a >> b"`},
		{"quoted fd form", "echo '1> log'"},
		{"backslash escape", `echo 5 \> 3`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, redir := parseRedirect(tt.input)
			assert.Equal(t, tt.input, cmd)
			assert.Nil(t, redir)
		})
	}
}

func TestParseRedirectFirstUnquotedOperatorWins(t *testing.T) {
	cmd, redir := parseRedirect("echo '>' done > out.txt")
	require.NotNil(t, redir)
	assert.Equal(t, "echo '>' done", cmd)
	assert.Equal(t, "out.txt", redir.path)
	assert.False(t, redir.appendTo)
}

func TestRedirectOpenTruncatesAndAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out")

	w, err := (&redirection{path: path}).open()
	require.NoError(t, err)
	_, err = w.Write([]byte("first\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	w, err = (&redirection{path: path, appendTo: true}).open()
	require.NoError(t, err)
	_, err = w.Write([]byte("second\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond\n", string(data))

	// Truncate mode starts the file over.
	w, err = (&redirection{path: path}).open()
	require.NoError(t, err)
	_, err = w.Write([]byte("fresh\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "fresh\n", string(data))
}

func TestRedirectOpenRejectsMissingTarget(t *testing.T) {
	_, err := (&redirection{}).open()
	assert.Error(t, err)
}
