package service

import (
	"context"

	"github.com/davideconti/bank-teller/internal/models"
)

// Teller exposes the operations the interactive front end consumes.
type Teller interface {
	ListCustomers(ctx context.Context) ([]*models.Customer, error)
	GetCustomer(ctx context.Context, customerID int) (*models.Customer, error)
	Deposit(ctx context.Context, customerID int, amount models.Money) (models.Money, error)
	Withdraw(ctx context.Context, customerID int, amount models.Money) (models.Money, error)
	CreateCustomer(ctx context.Context, name string, initialBalance models.Money) (*models.Customer, error)
	FormatMoney(m models.Money) string
}

// Ensure the concrete type implements the interface
var _ Teller = (*TellerService)(nil)
