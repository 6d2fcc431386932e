// Package repository provides the flat-file persistence layer for the teller.
package repository

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/davideconti/bank-teller/internal/models"
	"github.com/davideconti/bank-teller/internal/storage"
)

// customersFile is the customer data file inside the data directory.
const customersFile = "customers.csv"

// customersHeader is the fixed column order of the customer file.
var customersHeader = []string{"id", "name", "balance_cents"}

// CustomerRepository defines the interface for customer data access.
// FindByID returns (nil, nil) when no customer matches: absence is not
// an error.
type CustomerRepository interface {
	FindAll(ctx context.Context) ([]*models.Customer, error)
	FindByID(ctx context.Context, id int) (*models.Customer, error)
	Save(ctx context.Context, customer *models.Customer) error
}

// customerRepository implements CustomerRepository over a CSV file.
// The whole file is rewritten on every Save.
type customerRepository struct {
	path   string
	logger *slog.Logger
}

// NewCustomerRepository creates a CustomerRepository backed by the
// customers file in dir.
func NewCustomerRepository(dir *storage.Dir, logger *slog.Logger) CustomerRepository {
	return &customerRepository{
		path:   dir.Path(customersFile),
		logger: logger,
	}
}

// FindAll returns every stored customer in file order.
func (r *customerRepository) FindAll(ctx context.Context) ([]*models.Customer, error) {
	rows, err := r.readRows(ctx)
	if err != nil {
		return nil, err
	}

	customers := make([]*models.Customer, 0, len(rows))
	for _, row := range rows {
		customers = append(customers, rowToCustomer(row))
	}

	return customers, nil
}

// FindByID returns the first customer with the given id, or (nil, nil) if
// none matches.
func (r *customerRepository) FindByID(ctx context.Context, id int) (*models.Customer, error) {
	rows, err := r.readRows(ctx)
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		if row.id == id {
			return rowToCustomer(row), nil
		}
	}

	return nil, nil
}

// Save replaces the row matching the customer's id with its current name and
// balance, or appends a new row, then rewrites the entire file.
func (r *customerRepository) Save(ctx context.Context, customer *models.Customer) error {
	rows, err := r.readRows(ctx)
	if err != nil {
		return err
	}

	updated := false
	for i := range rows {
		if rows[i].id == customer.ID {
			rows[i].name = customer.Name
			rows[i].balanceCents = customer.Account.Balance().MinorUnits()
			updated = true
			break
		}
	}
	if !updated {
		rows = append(rows, customerRow{
			id:           customer.ID,
			name:         customer.Name,
			balanceCents: customer.Account.Balance().MinorUnits(),
		})
	}

	if err := r.writeRows(rows); err != nil {
		return err
	}

	r.logger.Debug("customer saved",
		"customer_id", customer.ID,
		"balance_cents", customer.Account.Balance().MinorUnits(),
	)

	return nil
}

// customerRow is one data row of the customers file.
type customerRow struct {
	id           int
	name         string
	balanceCents int64
}

// readRows reads every data row, skipping the header and rows with a blank
// id column. The file is created with just a header if it does not exist.
func (r *customerRepository) readRows(ctx context.Context) ([]customerRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := storage.EnsureCSV(r.path, customersHeader)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStorageWrite, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open customers file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	// Header row; an empty file yields no rows at all.
	if _, err := reader.Read(); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read customers header: %w", err)
	}

	var rows []customerRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read customers file: %w", err)
		}

		// Blank or malformed id column: skip the row.
		if len(record) < 1 || record[0] == "" {
			continue
		}
		id, err := strconv.Atoi(record[0])
		if err != nil {
			r.logger.Warn("skipping malformed customer row", "id", record[0])
			continue
		}

		row := customerRow{id: id}
		if len(record) > 1 {
			row.name = record[1]
		}
		if len(record) > 2 {
			row.balanceCents, _ = strconv.ParseInt(record[2], 10, 64)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// writeRows truncates the file and rewrites the header plus all rows.
func (r *customerRepository) writeRows(rows []customerRow) error {
	f, err := os.Create(r.path)
	if err != nil {
		return fmt.Errorf("%w: open customers file for writing: %v", models.ErrStorageWrite, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(customersHeader); err != nil {
		return fmt.Errorf("%w: write customers header: %v", models.ErrStorageWrite, err)
	}
	for _, row := range rows {
		record := []string{
			strconv.Itoa(row.id),
			row.name,
			strconv.FormatInt(row.balanceCents, 10),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("%w: write customer row: %v", models.ErrStorageWrite, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("%w: flush customers file: %v", models.ErrStorageWrite, err)
	}

	return nil
}

func rowToCustomer(row customerRow) *models.Customer {
	return models.NewCustomer(row.id, row.name, models.FromMinorUnits(row.balanceCents))
}
