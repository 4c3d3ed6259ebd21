package usecase

import (
	"context"

	"tapadmin/internal/domain/entity"
)

// CustomerDetail is the drill-down view of one customer: the global profile
// plus recent activity and merchant affiliations.
type CustomerDetail struct {
	Customer     *entity.Customer             `json:"customer"`
	Merchants    []entity.MerchantAffiliation `json:"merchants"`
	Transactions []*entity.TransactionRecord  `json:"transactions"`
	Redemptions  []*entity.RedemptionRecord   `json:"redemptions"`
}

// CustomerUsecase defines cross-merchant customer administration.
type CustomerUsecase interface {
	// ListCustomers returns the aggregated customer rows, filtered and
	// sorted. forceRefresh bypasses the aggregate cache.
	ListCustomers(ctx context.Context, query ListQuery, forceRefresh bool) ([]*entity.CustomerRow, error)

	// GetCustomerDetail loads the drill-down view of one customer.
	GetCustomerDetail(ctx context.Context, id string) (*CustomerDetail, error)

	// UpdateCustomerField applies one targeted field edit to the profile.
	UpdateCustomerField(ctx context.Context, id, path string, value any) error

	// DeleteCustomer removes the global profile document.
	DeleteCustomer(ctx context.Context, id string) error
}
