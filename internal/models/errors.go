package models

import "errors"

// Domain errors shared by entities and repositories
var (
	// ErrInvalidAmount indicates a malformed amount string
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrNegativeAmount indicates a negative operand where only non-negative
	// amounts are allowed
	ErrNegativeAmount = errors.New("negative amount")

	// ErrInsufficientFunds indicates a withdrawal exceeding the balance
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInvalidTransactionKind indicates an unrecognized transaction type
	ErrInvalidTransactionKind = errors.New("invalid transaction kind")

	// ErrStorageWrite indicates a data file could not be written or appended
	ErrStorageWrite = errors.New("storage write failed")
)
