package repository

import (
	"context"

	"tapadmin/internal/domain/entity"
	"tapadmin/internal/errors"
)

// Domain-specific errors for reward persistence.
var (
	// ErrRewardNotFound is returned when no document exists at the address.
	ErrRewardNotFound = errors.New("reward not found")
	// ErrInvalidRewardPath is returned when a collection path does not name
	// one of the three known reward locations.
	ErrInvalidRewardPath = errors.New("invalid reward collection path")
)

// RewardRepository defines read and point-mutation operations over the three
// reward locations.
type RewardRepository interface {
	// ListGlobalRewards scans the top-level rewards collection.
	ListGlobalRewards(ctx context.Context) ([]*entity.Reward, error)

	// ListMerchantRewards scans merchants/{merchantID}/rewards.
	ListMerchantRewards(ctx context.Context, merchantID string) ([]*entity.Reward, error)

	// ListCustomerRewards scans customers/{customerID}/rewards.
	ListCustomerRewards(ctx context.Context, customerID string) ([]*entity.Reward, error)

	// DeleteAtPath removes the single document addressed by a reward
	// collection path ("rewards/{id}", "merchants/{mid}/rewards/{id}" or
	// "customers/{cid}/rewards/{id}"). Sibling copies in the other locations
	// are left untouched.
	DeleteAtPath(ctx context.Context, collectionPath string) error

	// UpdateAtPath applies targeted field updates to the single document
	// addressed by a reward collection path.
	UpdateAtPath(ctx context.Context, collectionPath string, updates []FieldUpdate) error
}

// RewardWrite describes one atomic multi-location reward creation. All
// listed targets and the merchant patch commit in a single transaction;
// Precondition is re-evaluated inside the transaction against the fresh
// merchant document so caps cannot be raced past. A nil Reward makes the
// write a merchant-patch-only transaction, which the program builders use
// for embeds that produce no reward document. Precondition may rewrite
// MerchantFields from the fresh merchant before the patch is staged.
type RewardWrite struct {
	RewardID       string
	MerchantID     string
	Reward         *entity.Reward
	WriteGlobal    bool
	CustomerIDs    []string
	MerchantFields []FieldUpdate
	Precondition   func(m *entity.Merchant) error
}

// AtomicRewardWriter is the transactional write primitive behind every
// program builder.
type AtomicRewardWriter interface {
	// NewRewardID allocates the document id shared by all copies.
	NewRewardID() string

	// CreateReward runs the multi-location write transactionally.
	CreateReward(ctx context.Context, write *RewardWrite) error
}
