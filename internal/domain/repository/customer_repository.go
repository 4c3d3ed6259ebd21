package repository

import (
	"context"

	"tapadmin/internal/domain/entity"
	"tapadmin/internal/errors"
)

// ErrCustomerNotFound is returned when a global customer profile is missing.
var ErrCustomerNotFound = errors.New("customer not found")

// CustomerRepository defines global customer-profile operations.
type CustomerRepository interface {
	// ListCustomers scans the whole customers collection.
	ListCustomers(ctx context.Context) ([]*entity.Customer, error)

	// FindCustomerByID retrieves one global customer profile.
	FindCustomerByID(ctx context.Context, id string) (*entity.Customer, error)

	// UpdateCustomer applies targeted field updates to a customer profile.
	UpdateCustomer(ctx context.Context, id string, updates []FieldUpdate) error

	// DeleteCustomer removes the global profile document.
	DeleteCustomer(ctx context.Context, id string) error

	// ListTransactions returns the customer's most recent transactions,
	// newest first, capped at limit.
	ListTransactions(ctx context.Context, customerID string, limit int) ([]*entity.TransactionRecord, error)

	// ListRedemptions returns the customer's most recent redemptions,
	// newest first, capped at limit.
	ListRedemptions(ctx context.Context, customerID string, limit int) ([]*entity.RedemptionRecord, error)
}
