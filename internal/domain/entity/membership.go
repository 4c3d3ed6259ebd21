package entity

import "time"

// Tier names. Bronze is the default starting tier and cannot be modified.
const (
	TierBronze = "Bronze"
	TierSilver = "Silver"
	TierGold   = "Gold"
)

// TierCondition is a single threshold that can be independently enabled.
type TierCondition struct {
	Enabled bool    `firestore:"enabled" json:"enabled"`
	Value   float64 `firestore:"value" json:"value"`
}

// TierConditions holds the qualification thresholds of a membership tier.
type TierConditions struct {
	LifetimeTransactions TierCondition `firestore:"lifetimeTransactions" json:"lifetimeTransactions"`
	LifetimeSpend        TierCondition `firestore:"lifetimeSpend" json:"lifetimeSpend"`
	NumberOfRedemptions  TierCondition `firestore:"numberOfRedemptions" json:"numberOfRedemptions"`
}

// MembershipTier is a merchant-scoped tier document at
// merchants/{merchantId}/memberships/{id}. CustomerCount is derived by
// counting case-insensitive tier-name matches over the merchant's customer
// subdocuments; it is never persisted.
type MembershipTier struct {
	ID            string         `firestore:"-" json:"id"`
	Name          string         `firestore:"name" json:"name"`
	Description   string         `firestore:"description" json:"description"`
	Order         int            `firestore:"order" json:"order"`
	IsActive      bool           `firestore:"isActive" json:"isActive"`
	Conditions    TierConditions `firestore:"conditions" json:"conditions"`
	CreatedAt     time.Time      `firestore:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time      `firestore:"updatedAt" json:"updatedAt"`
	CustomerCount int            `firestore:"-" json:"customerCount"`
}

// Qualifies reports whether the given merchant-relative stats meet every
// enabled condition of the tier. A tier with no enabled conditions only
// qualifies customers when it is the Bronze baseline.
func (t *MembershipTier) Qualifies(spend float64, transactions, redemptions int64) bool {
	c := t.Conditions
	if !c.LifetimeTransactions.Enabled && !c.LifetimeSpend.Enabled && !c.NumberOfRedemptions.Enabled {
		return t.Name == TierBronze
	}
	if c.LifetimeTransactions.Enabled && float64(transactions) < c.LifetimeTransactions.Value {
		return false
	}
	if c.LifetimeSpend.Enabled && spend < c.LifetimeSpend.Value {
		return false
	}
	if c.NumberOfRedemptions.Enabled && float64(redemptions) < c.NumberOfRedemptions.Value {
		return false
	}

	return true
}
