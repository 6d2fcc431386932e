// Package mocks provides testify mocks for the repository interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/davideconti/bank-teller/internal/models"
	"github.com/davideconti/bank-teller/internal/repository"
)

// MockCustomerRepository is a mock implementation of repository.CustomerRepository.
type MockCustomerRepository struct {
	mock.Mock
}

var _ repository.CustomerRepository = (*MockCustomerRepository)(nil)

// NewMockCustomerRepository creates a new mock bound to the test's lifecycle.
func NewMockCustomerRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCustomerRepository {
	m := &MockCustomerRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockCustomerRepository) FindAll(ctx context.Context) ([]*models.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id int) (*models.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Save(ctx context.Context, customer *models.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

// MockTransactionLogger is a mock implementation of repository.TransactionLogger.
type MockTransactionLogger struct {
	mock.Mock
}

var _ repository.TransactionLogger = (*MockTransactionLogger)(nil)

// NewMockTransactionLogger creates a new mock bound to the test's lifecycle.
func NewMockTransactionLogger(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTransactionLogger {
	m := &MockTransactionLogger{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockTransactionLogger) Log(ctx context.Context, tx *models.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}
