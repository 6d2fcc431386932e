package models

import "fmt"

// Customer is a bank customer owning exactly one account.
type Customer struct {
	ID      int
	Name    string
	Account *Account
}

// NewCustomer creates a customer with an account identified as "ACC-<id>"
// holding the given opening balance.
func NewCustomer(id int, name string, initialBalance Money) *Customer {
	return &Customer{
		ID:      id,
		Name:    name,
		Account: NewAccount(fmt.Sprintf("ACC-%d", id), initialBalance),
	}
}
