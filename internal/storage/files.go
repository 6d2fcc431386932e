// Package storage manages the flat-file data directory used for persistence.
package storage

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/davideconti/bank-teller/internal/config"
)

// Dir is an opened data directory holding the CSV data files.
type Dir struct {
	path string
}

// Open prepares the data directory, creating it if absent.
func Open(cfg *config.DataConfig, logger *slog.Logger) (*Dir, error) {
	logger.Info("opening data directory", "path", cfg.Dir)

	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		logger.Error("failed to create data directory", "error", err)
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return &Dir{path: cfg.Dir}, nil
}

// Path returns the full path of a file inside the data directory.
func (d *Dir) Path(name string) string {
	return filepath.Join(d.path, name)
}

// EnsureCSV creates the named CSV file with the given header row if it does
// not exist yet, creating parent directories as needed. The full path of the
// file is returned.
func EnsureCSV(path string, header []string) (string, error) {
	if _, err := os.Stat(path); err == nil {
		return path, nil
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("failed to stat %s: %w", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create parent directory for %s: %w", path, err)
	}

	line := strings.Join(header, ",") + "\n"
	if err := os.WriteFile(path, []byte(line), 0o644); err != nil {
		return "", fmt.Errorf("failed to initialize %s: %w", path, err)
	}

	return path, nil
}
