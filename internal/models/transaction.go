package models

import (
	"fmt"
	"time"
)

// TransactionType represents the kind of a teller operation
type TransactionType string

const (
	TransactionTypeDeposit  TransactionType = "DEPOSIT"
	TransactionTypeWithdraw TransactionType = "WITHDRAW"
)

// Transaction is an immutable record of one completed deposit or withdrawal.
// The amount is always non-negative; the type encodes the direction.
type Transaction struct {
	ID         string
	CustomerID int
	Type       TransactionType
	Amount     Money
	At         time.Time
}

// NewTransaction builds a transaction record, rejecting unrecognized kinds
// with ErrInvalidTransactionKind.
func NewTransaction(id string, customerID int, kind TransactionType, amount Money, at time.Time) (*Transaction, error) {
	if kind != TransactionTypeDeposit && kind != TransactionTypeWithdraw {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTransactionKind, kind)
	}
	return &Transaction{
		ID:         id,
		CustomerID: customerID,
		Type:       kind,
		Amount:     amount,
		At:         at,
	}, nil
}
