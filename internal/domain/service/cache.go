package service

import (
	"context"

	"tapadmin/internal/domain/entity"
)

// AggregateCache stores the derived customer rows so the admin customers
// view does not re-run the merchants×customers fan-out on every load.
type AggregateCache interface {
	// GetCustomerRows returns the cached rows, or ok=false on miss.
	GetCustomerRows(ctx context.Context) ([]*entity.CustomerRow, bool, error)

	// SetCustomerRows stores freshly computed rows.
	SetCustomerRows(ctx context.Context, rows []*entity.CustomerRow) error

	// InvalidateCustomerRows drops the cached rows after a mutation.
	InvalidateCustomerRows(ctx context.Context) error

	// Close releases the client.
	Close() error
}
