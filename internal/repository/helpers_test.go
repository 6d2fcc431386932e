package repository

import (
	"io"
	"log/slog"
	"testing"

	"github.com/davideconti/bank-teller/internal/config"
	"github.com/davideconti/bank-teller/internal/storage"
)

func setupTestDir(t *testing.T) *storage.Dir {
	t.Helper()
	return setupTestDirAt(t, t.TempDir())
}

func setupTestDirAt(t *testing.T, path string) *storage.Dir {
	t.Helper()

	dir, err := storage.Open(&config.DataConfig{Dir: path}, testLogger())
	if err != nil {
		t.Fatalf("failed to open test data directory: %v", err)
	}

	return dir
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
