package repository

import (
	"context"

	"tapadmin/internal/domain/entity"
	"tapadmin/internal/errors"
)

// ErrTierNotFound is returned when a membership tier document is missing.
var ErrTierNotFound = errors.New("membership tier not found")

// MembershipRepository defines merchant-scoped tier operations.
type MembershipRepository interface {
	// ListTiers returns the merchant's tiers ordered by their order field.
	ListTiers(ctx context.Context, merchantID string) ([]*entity.MembershipTier, error)

	// FindTierByID retrieves one tier document.
	FindTierByID(ctx context.Context, merchantID, tierID string) (*entity.MembershipTier, error)

	// UpsertTier creates or replaces a tier document. A tier created without
	// an id gets an auto-generated one, written back onto the entity.
	UpsertTier(ctx context.Context, merchantID string, tier *entity.MembershipTier) error

	// DeleteTier removes a tier document.
	DeleteTier(ctx context.Context, merchantID, tierID string) error
}
