package models

import "fmt"

// Account holds a single-currency balance for one customer.
// Its balance never goes negative: withdrawals that would overdraw and
// negative operands are rejected before any mutation happens.
type Account struct {
	id      string
	balance Money
}

// NewAccount creates an account with the given identifier and opening balance.
func NewAccount(id string, initialBalance Money) *Account {
	return &Account{id: id, balance: initialBalance}
}

// ID returns the account identifier.
func (a *Account) ID() string {
	return a.id
}

// Balance returns the current balance.
func (a *Account) Balance() Money {
	return a.balance
}

// Deposit adds amount to the balance. Negative amounts are rejected with
// ErrNegativeAmount and leave the balance untouched.
func (a *Account) Deposit(amount Money) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: cannot deposit %d minor units", ErrNegativeAmount, amount.MinorUnits())
	}
	a.balance = a.balance.Add(amount)
	return nil
}

// Withdraw removes amount from the balance. Negative amounts are rejected
// with ErrNegativeAmount; amounts exceeding the balance are rejected with
// ErrInsufficientFunds. The balance is unchanged on any failure.
func (a *Account) Withdraw(amount Money) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: cannot withdraw %d minor units", ErrNegativeAmount, amount.MinorUnits())
	}
	if amount.GreaterThan(a.balance) {
		return fmt.Errorf("%w: balance %d, requested %d minor units",
			ErrInsufficientFunds, a.balance.MinorUnits(), amount.MinorUnits())
	}
	a.balance = a.balance.Sub(amount)
	return nil
}
