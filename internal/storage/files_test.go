package storage

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davideconti/bank-teller/internal/config"
)

func TestOpen_CreatesDirectory(t *testing.T) {
	base := filepath.Join(t.TempDir(), "nested", "data")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	dir, err := Open(&config.DataConfig{Dir: base}, logger)
	require.NoError(t, err)

	info, err := os.Stat(base)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, filepath.Join(base, "x.csv"), dir.Path("x.csv"))
}

func TestEnsureCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "things.csv")

	got, err := EnsureCSV(path, []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, path, got)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a,b\n", string(data))

	// A second call must leave existing content alone.
	require.NoError(t, os.WriteFile(path, []byte("a,b\n1,2\n"), 0o644))
	_, err = EnsureCSV(path, []string{"a", "b"})
	require.NoError(t, err)

	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a,b\n1,2\n", string(data))
}
