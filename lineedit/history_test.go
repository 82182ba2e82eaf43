package lineedit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryAppendAndGetPreserveOrder(t *testing.T) {
	h := NewHistory()
	require.NoError(t, h.Append("cd /tmp"))
	require.NoError(t, h.Append("ls -a"))
	require.NoError(t, h.Append("ls -a")) // duplicates are kept

	assert.Equal(t, 3, h.Count())

	first, err := h.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "cd /tmp", first)

	last, err := h.Get(2)
	require.NoError(t, err)
	assert.Equal(t, "ls -a", last)
}

func TestHistoryGetOutOfRange(t *testing.T) {
	h := NewHistory()
	require.NoError(t, h.Append("only"))

	for _, idx := range []int{-1, 1, 99} {
		_, err := h.Get(idx)
		require.Error(t, err)

		var rangeErr *OutOfRangeError
		require.ErrorAs(t, err, &rangeErr)
		assert.Equal(t, idx, rangeErr.Index)
		assert.Equal(t, 1, rangeErr.Count)
	}
}

func TestOpenHistoryMissingFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")

	h, err := OpenHistory(path, 0)
	require.NoError(t, err)
	defer h.Close()

	assert.Zero(t, h.Count())
}

func TestOpenHistoryLoadsRecordsInOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")
	require.NoError(t, os.WriteFile(path, []byte("cd /tmp\nls -a\n\npwd\n"), 0o600))

	h, err := OpenHistory(path, 0)
	require.NoError(t, err)
	defer h.Close()

	// Empty records are skipped, everything else kept in file order.
	require.Equal(t, 3, h.Count())
	entry, err := h.Get(2)
	require.NoError(t, err)
	assert.Equal(t, "pwd", entry)
}

func TestOpenHistoryLimitKeepsNewest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")
	require.NoError(t, os.WriteFile(path, []byte("one\ntwo\nthree\nfour\n"), 0o600))

	h, err := OpenHistory(path, 2)
	require.NoError(t, err)
	defer h.Close()

	require.Equal(t, 2, h.Count())
	entry, err := h.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "three", entry)
}

func TestHistoryAppendPersistsRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")

	h, err := OpenHistory(path, 0)
	require.NoError(t, err)
	require.NoError(t, h.Append("echo hi"))
	require.NoError(t, h.Append("pwd"))
	require.NoError(t, h.Close())

	// A fresh store sees exactly what the previous session appended.
	reloaded, err := OpenHistory(path, 0)
	require.NoError(t, err)
	defer reloaded.Close()

	require.Equal(t, 2, reloaded.Count())
	entry, err := reloaded.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "pwd", entry)
}

func TestHistoryCloseIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")

	h, err := OpenHistory(path, 0)
	require.NoError(t, err)
	assert.NoError(t, h.Close())
	assert.NoError(t, h.Close())

	// Memory-only stores close without complaint too.
	assert.NoError(t, NewHistory().Close())
}
