// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"tapadmin/internal/domain/entity"
	"tapadmin/internal/errors"
)

// Domain-specific errors for merchant persistence.
var (
	// ErrMerchantNotFound is returned when a merchant document does not exist.
	ErrMerchantNotFound = errors.New("merchant not found")
	// ErrMerchantCustomerNotFound is returned when a merchant has no
	// subdocument for the requested customer.
	ErrMerchantCustomerNotFound = errors.New("merchant customer not found")
)

// FieldUpdate is a targeted update to one (possibly dotted) document path.
// Targeted paths keep a racing edit to a sibling nested field intact, unlike
// a whole-document merge.
type FieldUpdate struct {
	Path  string
	Value any
}

// MerchantRepository defines merchant-document operations.
type MerchantRepository interface {
	// CreateMerchant persists a new merchant with an auto-generated id and
	// returns that id.
	CreateMerchant(ctx context.Context, merchant *entity.Merchant) (string, error)

	// FindMerchantByID retrieves a merchant document.
	FindMerchantByID(ctx context.Context, id string) (*entity.Merchant, error)

	// ListMerchants scans the whole merchants collection.
	ListMerchants(ctx context.Context) ([]*entity.Merchant, error)

	// UpdateMerchant applies targeted field updates to a merchant document.
	UpdateMerchant(ctx context.Context, id string, updates []FieldUpdate) error

	// DeleteMerchant removes the merchant document. Subcollections are
	// orphaned on purpose; see the reward provenance model.
	DeleteMerchant(ctx context.Context, id string) error

	// ListMerchantCustomers scans merchants/{id}/customers.
	ListMerchantCustomers(ctx context.Context, merchantID string) ([]*entity.MerchantCustomer, error)

	// FindMerchantCustomer fetches one merchant-scoped customer subdocument.
	FindMerchantCustomer(ctx context.Context, merchantID, customerID string) (*entity.MerchantCustomer, error)

	// SetMerchantCustomerTier writes the customer's tier name on the
	// merchant-scoped subdocument.
	SetMerchantCustomerTier(ctx context.Context, merchantID, customerID, tier string) error
}
