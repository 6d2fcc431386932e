package repository

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/davideconti/bank-teller/internal/models"
	"github.com/davideconti/bank-teller/internal/storage"
)

// transactionsFile is the append-only audit log inside the data directory.
const transactionsFile = "transactions.csv"

// transactionsHeader is the fixed column order of the transaction log.
var transactionsHeader = []string{"id", "customer_id", "type", "amount_cents", "at_iso"}

// TransactionLogger records completed teller operations. The log is
// write-only: nothing in the system ever reads it back.
type TransactionLogger interface {
	Log(ctx context.Context, tx *models.Transaction) error
}

// csvTransactionLogger appends one row per transaction to a CSV file.
// Existing rows are never rewritten.
type csvTransactionLogger struct {
	path   string
	logger *slog.Logger
}

// NewCSVTransactionLogger creates a TransactionLogger backed by the
// transactions file in dir.
func NewCSVTransactionLogger(dir *storage.Dir, logger *slog.Logger) TransactionLogger {
	return &csvTransactionLogger{
		path:   dir.Path(transactionsFile),
		logger: logger,
	}
}

// Log appends the transaction as one CSV row. The row is flushed to the file
// before Log returns.
func (l *csvTransactionLogger) Log(ctx context.Context, tx *models.Transaction) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := storage.EnsureCSV(l.path, transactionsHeader)
	if err != nil {
		return fmt.Errorf("%w: %v", models.ErrStorageWrite, err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("%w: open transaction log for append: %v", models.ErrStorageWrite, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	record := []string{
		tx.ID,
		strconv.Itoa(tx.CustomerID),
		string(tx.Type),
		strconv.FormatInt(tx.Amount.MinorUnits(), 10),
		tx.At.Format(time.RFC3339),
	}
	if err := writer.Write(record); err != nil {
		return fmt.Errorf("%w: append transaction row: %v", models.ErrStorageWrite, err)
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("%w: flush transaction log: %v", models.ErrStorageWrite, err)
	}

	l.logger.Debug("transaction logged",
		"transaction_id", tx.ID,
		"customer_id", tx.CustomerID,
		"type", tx.Type,
	)

	return nil
}

// noopTransactionLogger discards every transaction. Selected when
// transaction logging is administratively disabled.
type noopTransactionLogger struct{}

// NewNoopTransactionLogger creates a TransactionLogger that does nothing.
func NewNoopTransactionLogger() TransactionLogger {
	return noopTransactionLogger{}
}

// Log discards the transaction and always succeeds.
func (noopTransactionLogger) Log(context.Context, *models.Transaction) error {
	return nil
}
