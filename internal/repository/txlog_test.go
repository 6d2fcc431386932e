package repository

import (
	"context"
	"encoding/csv"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davideconti/bank-teller/internal/models"
)

func mustTransaction(t *testing.T, id string, customerID int, kind models.TransactionType, units int64) *models.Transaction {
	t.Helper()

	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.FixedZone("CEST", 2*3600))
	tx, err := models.NewTransaction(id, customerID, kind, models.FromMinorUnits(units), at)
	require.NoError(t, err)
	return tx
}

func readLogRecords(t *testing.T, path string) [][]string {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return records
}

func TestCSVTransactionLogger_AppendsRows(t *testing.T) {
	dir := setupTestDir(t)
	logger := NewCSVTransactionLogger(dir, testLogger())
	ctx := context.Background()

	require.NoError(t, logger.Log(ctx, mustTransaction(t, "tx-1", 1, models.TransactionTypeDeposit, 500)))
	require.NoError(t, logger.Log(ctx, mustTransaction(t, "tx-2", 1, models.TransactionTypeWithdraw, 200)))

	records := readLogRecords(t, dir.Path("transactions.csv"))
	require.Len(t, records, 3, "header plus two rows")

	assert.Equal(t, []string{"id", "customer_id", "type", "amount_cents", "at_iso"}, records[0])
	assert.Equal(t, []string{"tx-1", "1", "DEPOSIT", "500", "2025-06-01T12:00:00+02:00"}, records[1])
	assert.Equal(t, []string{"tx-2", "1", "WITHDRAW", "200", "2025-06-01T12:00:00+02:00"}, records[2])
}

func TestCSVTransactionLogger_HeaderWrittenOnce(t *testing.T) {
	dir := setupTestDir(t)
	ctx := context.Background()

	// Two separate logger instances appending to the same file.
	first := NewCSVTransactionLogger(dir, testLogger())
	require.NoError(t, first.Log(ctx, mustTransaction(t, "tx-1", 1, models.TransactionTypeDeposit, 500)))

	second := NewCSVTransactionLogger(dir, testLogger())
	require.NoError(t, second.Log(ctx, mustTransaction(t, "tx-2", 2, models.TransactionTypeDeposit, 100)))

	records := readLogRecords(t, dir.Path("transactions.csv"))
	require.Len(t, records, 3)

	headers := 0
	for _, rec := range records {
		if rec[0] == "id" {
			headers++
		}
	}
	assert.Equal(t, 1, headers, "header must appear exactly once")
}

func TestNoopTransactionLogger(t *testing.T) {
	dir := setupTestDir(t)
	logger := NewNoopTransactionLogger()

	err := logger.Log(context.Background(), mustTransaction(t, "tx-1", 1, models.TransactionTypeDeposit, 500))
	require.NoError(t, err)

	_, statErr := os.Stat(dir.Path("transactions.csv"))
	assert.True(t, os.IsNotExist(statErr), "discarding logger must not create the file")
}
