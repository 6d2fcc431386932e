package service

import "fmt"

// ServiceError represents a business logic error with a code
type ServiceError struct {
	Err     error
	Message string
	Code    string
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// Common error codes
const (
	ErrCodeInvalidAmount     = "invalid_amount"
	ErrCodeNegativeAmount    = "negative_amount"
	ErrCodeInsufficientFunds = "insufficient_funds"
	ErrCodeCustomerNotFound  = "customer_not_found"
	ErrCodeInvalidName       = "invalid_name"
	ErrCodeStorageWrite      = "storage_write"
	ErrCodeInternalError     = "internal_error"
)
