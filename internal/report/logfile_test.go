package report

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogWriterWritesThrough(t *testing.T) {
	dir := t.TempDir()
	lw := NewLogWriter(dir)

	f, path, err := lw.Open(fixedHeader)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "jetdiag-20210603-143000.log"), path)

	_, err = io.WriteString(f, "PASS: 3  WARN: 0  FAIL: 0\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "PASS: 3  WARN: 0  FAIL: 0\n", string(data))
}

func TestLogWriterCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "logs")
	lw := NewLogWriter(dir)

	f, _, err := lw.Open(fixedHeader)
	require.NoError(t, err)
	require.NoError(t, f.Close())
}

func TestLogWriterFailureIsReportFault(t *testing.T) {
	// A regular file where the directory should be forces the failure.
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	lw := NewLogWriter(blocker)
	_, _, err := lw.Open(fixedHeader)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrReport))
}
