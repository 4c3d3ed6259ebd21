package usecase

import (
	"context"

	"tapadmin/internal/domain/entity"
)

// TierInput creates or updates a membership tier.
type TierInput struct {
	ID          string                `json:"id"`
	Name        string                `json:"name" validate:"required,oneof=Bronze Silver Gold"`
	Description string                `json:"description"`
	Order       int                   `json:"order" validate:"gte=0"`
	IsActive    bool                  `json:"isActive"`
	Conditions  entity.TierConditions `json:"conditions"`
}

// TierChange records one customer whose tier moved during recalculation.
type TierChange struct {
	CustomerID string `json:"customerId"`
	From       string `json:"from"`
	To         string `json:"to"`
}

// MembershipUsecase defines merchant membership-tier administration.
type MembershipUsecase interface {
	// ListTiers returns the merchant's tiers with derived customer counts.
	ListTiers(ctx context.Context, merchantID string) ([]*entity.MembershipTier, error)

	// SaveTier creates or updates a tier. The Bronze baseline cannot be
	// renamed or given conditions.
	SaveTier(ctx context.Context, merchantID string, input *TierInput) (*entity.MembershipTier, error)

	// DeleteTier removes a tier. The Bronze baseline cannot be deleted.
	DeleteTier(ctx context.Context, merchantID, tierID string) error

	// RecalculateTiers reassigns every customer of the merchant to the
	// highest tier they qualify for and returns the moves made.
	RecalculateTiers(ctx context.Context, merchantID string) ([]TierChange, error)
}
