package tests

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davideconti/bank-teller/internal/config"
	"github.com/davideconti/bank-teller/internal/repository"
	"github.com/davideconti/bank-teller/internal/service"
	"github.com/davideconti/bank-teller/internal/storage"
)

// TestEnv wires a full teller stack over a throwaway data directory.
type TestEnv struct {
	Teller  *service.TellerService
	DataDir *storage.Dir
}

// SetupTest builds a teller with real file-backed repositories. When
// logTransactions is false the discarding log variant is used, matching the
// LOG_TRANSACTIONS=false configuration.
func SetupTest(t *testing.T, logTransactions bool) *TestEnv {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	dir, err := storage.Open(&config.DataConfig{Dir: t.TempDir()}, logger)
	require.NoError(t, err, "failed to open data directory")

	return setupWith(t, dir, logTransactions, logger)
}

// SetupTestAt builds a second teller stack over an already-open data
// directory, simulating a process restart.
func SetupTestAt(t *testing.T, dir *storage.Dir, logTransactions bool) *TestEnv {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return setupWith(t, dir, logTransactions, logger)
}

func setupWith(t *testing.T, dir *storage.Dir, logTransactions bool, logger *slog.Logger) *TestEnv {
	t.Helper()

	customers := repository.NewCustomerRepository(dir, logger)

	var txlog repository.TransactionLogger
	if logTransactions {
		txlog = repository.NewCSVTransactionLogger(dir, logger)
	} else {
		txlog = repository.NewNoopTransactionLogger()
	}

	teller := service.NewTellerService(customers, txlog, "EUR", logger)

	return &TestEnv{
		Teller:  teller,
		DataDir: dir,
	}
}
