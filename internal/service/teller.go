package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/davideconti/bank-teller/internal/models"
	"github.com/davideconti/bank-teller/internal/repository"
)

// TellerService orchestrates customer lookups, account mutation, persistence
// and transaction logging for deposits and withdrawals.
type TellerService struct {
	customers repository.CustomerRepository
	txlog     repository.TransactionLogger
	currency  string
	logger    *slog.Logger
}

// NewTellerService creates a new TellerService.
func NewTellerService(
	customers repository.CustomerRepository,
	txlog repository.TransactionLogger,
	currency string,
	logger *slog.Logger,
) *TellerService {
	return &TellerService{
		customers: customers,
		txlog:     txlog,
		currency:  currency,
		logger:    logger,
	}
}

// ListCustomers returns every stored customer in file order.
func (s *TellerService) ListCustomers(ctx context.Context) ([]*models.Customer, error) {
	customers, err := s.customers.FindAll(ctx)
	if err != nil {
		return nil, storageError("failed to list customers", err)
	}
	return customers, nil
}

// GetCustomer returns the customer with the given id, or (nil, nil) when no
// such customer exists.
func (s *TellerService) GetCustomer(ctx context.Context, customerID int) (*models.Customer, error) {
	customer, err := s.customers.FindByID(ctx, customerID)
	if err != nil {
		return nil, storageError("failed to load customer", err)
	}
	return customer, nil
}

// Deposit adds amount to the customer's account, persists the new balance
// and logs the transaction. The new balance is returned.
//
// If the save succeeds but logging fails, the error still propagates: the
// deposit has already taken visible effect in storage and the caller must
// know the audit trail is incomplete.
func (s *TellerService) Deposit(ctx context.Context, customerID int, amount models.Money) (models.Money, error) {
	return s.perform(ctx, customerID, models.TransactionTypeDeposit, amount)
}

// Withdraw removes amount from the customer's account, persists the new
// balance and logs the transaction. The new balance is returned.
func (s *TellerService) Withdraw(ctx context.Context, customerID int, amount models.Money) (models.Money, error) {
	return s.perform(ctx, customerID, models.TransactionTypeWithdraw, amount)
}

// CreateCustomer stores a new customer with the next free id (max existing
// id + 1) and the given opening balance.
func (s *TellerService) CreateCustomer(ctx context.Context, name string, initialBalance models.Money) (*models.Customer, error) {
	if strings.TrimSpace(name) == "" {
		return nil, &ServiceError{
			Code:    ErrCodeInvalidName,
			Message: "customer name cannot be empty",
		}
	}
	if initialBalance.IsNegative() {
		return nil, &ServiceError{
			Code:    ErrCodeNegativeAmount,
			Message: "opening balance cannot be negative",
			Err:     models.ErrNegativeAmount,
		}
	}

	existing, err := s.customers.FindAll(ctx)
	if err != nil {
		return nil, storageError("failed to load customers", err)
	}

	maxID := 0
	for _, c := range existing {
		if c.ID > maxID {
			maxID = c.ID
		}
	}

	customer := models.NewCustomer(maxID+1, name, initialBalance)
	if err := s.customers.Save(ctx, customer); err != nil {
		return nil, storageError("failed to save customer", err)
	}

	s.logger.Info("customer created",
		"customer_id", customer.ID,
		"balance_cents", initialBalance.MinorUnits(),
	)

	return customer, nil
}

// FormatMoney renders money in the teller's configured currency.
func (s *TellerService) FormatMoney(m models.Money) string {
	return m.Format(s.currency)
}

// perform contains the shared deposit/withdraw flow: load, mutate, save, log.
func (s *TellerService) perform(ctx context.Context, customerID int, kind models.TransactionType, amount models.Money) (models.Money, error) {
	customer, err := s.customers.FindByID(ctx, customerID)
	if err != nil {
		return models.Money{}, storageError("failed to load customer", err)
	}
	if customer == nil {
		return models.Money{}, &ServiceError{
			Code:    ErrCodeCustomerNotFound,
			Message: fmt.Sprintf("customer %d not found", customerID),
		}
	}

	switch kind {
	case models.TransactionTypeDeposit:
		err = customer.Account.Deposit(amount)
	case models.TransactionTypeWithdraw:
		err = customer.Account.Withdraw(amount)
	}
	if err != nil {
		return models.Money{}, accountError(err)
	}

	if err := s.customers.Save(ctx, customer); err != nil {
		return models.Money{}, storageError("failed to persist balance", err)
	}

	tx, err := models.NewTransaction(uuid.NewString(), customerID, kind, amount, time.Now())
	if err != nil {
		return models.Money{}, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: "failed to build transaction record",
			Err:     err,
		}
	}
	if err := s.txlog.Log(ctx, tx); err != nil {
		return models.Money{}, storageError("failed to log transaction", err)
	}

	s.logger.Info("operation completed",
		"customer_id", customerID,
		"type", kind,
		"amount_cents", amount.MinorUnits(),
		"balance_cents", customer.Account.Balance().MinorUnits(),
	)

	return customer.Account.Balance(), nil
}

// accountError maps domain-level account failures onto service error codes.
func accountError(err error) error {
	code := ErrCodeInternalError
	switch {
	case errors.Is(err, models.ErrNegativeAmount):
		code = ErrCodeNegativeAmount
	case errors.Is(err, models.ErrInsufficientFunds):
		code = ErrCodeInsufficientFunds
	}
	return &ServiceError{
		Code:    code,
		Message: "operation rejected",
		Err:     err,
	}
}

// storageError classifies repository failures: write failures carry the
// storage_write code, anything else is internal.
func storageError(message string, err error) error {
	code := ErrCodeInternalError
	if errors.Is(err, models.ErrStorageWrite) {
		code = ErrCodeStorageWrite
	}
	return &ServiceError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
