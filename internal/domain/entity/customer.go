package entity

import "time"

// Customer is a global customer profile in the `customers` collection.
type Customer struct {
	ID                        string    `firestore:"-" json:"customerId"`
	FullName                  string    `firestore:"fullName" json:"fullName"`
	FirstName                 string    `firestore:"firstName" json:"firstName"`
	LastName                  string    `firestore:"lastName" json:"lastName"`
	Email                     string    `firestore:"email" json:"email"`
	MobileNumber              string    `firestore:"mobileNumber" json:"mobileNumber"`
	ProfilePictureURL         string    `firestore:"profilePictureUrl" json:"profilePictureUrl"`
	ShareProfileWithMerchants bool      `firestore:"shareProfileWithMerchants" json:"shareProfileWithMerchants"`
	MembershipTier            string    `firestore:"membershipTier" json:"membershipTier"`
	CreatedAt                 time.Time `firestore:"createdAt" json:"createdAt"`
}

// DisplayName prefers the stored full name and falls back to a first+last
// concatenation.
func (c *Customer) DisplayName() string {
	if c.FullName != "" {
		return c.FullName
	}
	name := c.FirstName
	if c.LastName != "" {
		if name != "" {
			name += " "
		}
		name += c.LastName
	}

	return name
}

// MerchantCustomer is the merchant-scoped customer subdocument at
// merchants/{merchantId}/customers/{customerId}. It carries the
// merchant-relative stats summed by the admin aggregation path.
type MerchantCustomer struct {
	CustomerID               string     `firestore:"-" json:"customerId"`
	FullName                 string     `firestore:"fullName" json:"fullName"`
	PointsBalance            int64      `firestore:"pointsBalance" json:"pointsBalance"`
	TotalLifetimeSpend       float64    `firestore:"totalLifetimeSpend" json:"totalLifetimeSpend"`
	LifetimeTransactionCount int64      `firestore:"lifetimeTransactionCount" json:"lifetimeTransactionCount"`
	RedemptionCount          int64      `firestore:"redemptionCount" json:"redemptionCount"`
	HighestTransactionAmount float64    `firestore:"highestTransactionAmount" json:"highestTransactionAmount"`
	MembershipTier           string     `firestore:"membershipTier" json:"membershipTier"`
	FirstTransactionDate     *time.Time `firestore:"firstTransactionDate" json:"firstTransactionDate,omitempty"`
	LastTransactionDate      *time.Time `firestore:"lastTransactionDate" json:"lastTransactionDate,omitempty"`
	DaysSinceLastVisit       int        `firestore:"daysSinceLastVisit" json:"daysSinceLastVisit"`
}

// MerchantAffiliation names a merchant a customer has a subdocument with.
type MerchantAffiliation struct {
	MerchantID   string `json:"merchantId"`
	MerchantName string `json:"merchantName"`
}

// CustomerRow is the derived, non-persisted admin view of a customer:
// the global profile enriched with cross-merchant totals. It is rebuilt
// from the per-merchant subdocuments and never written back.
type CustomerRow struct {
	CustomerID         string                `json:"customerId"`
	FullName           string                `json:"fullName"`
	Email              string                `json:"email"`
	MembershipTier     string                `json:"membershipTier"`
	ProfilePictureURL  string                `json:"profilePictureUrl"`
	TotalLifetimeSpend float64               `json:"totalLifetimeSpend"`
	TotalTransactions  int64                 `json:"totalTransactions"`
	TotalRedemptions   int64                 `json:"totalRedemptions"`
	Merchants          []MerchantAffiliation `json:"merchants"`
}

// TransactionRecord is a customer's transaction at
// customers/{customerId}/transactions/{id}.
type TransactionRecord struct {
	ID         string    `firestore:"-" json:"id"`
	MerchantID string    `firestore:"merchantId" json:"merchantId"`
	Amount     float64   `firestore:"amount" json:"amount"`
	Type       string    `firestore:"type" json:"type"`
	Status     string    `firestore:"status" json:"status"`
	CreatedAt  time.Time `firestore:"createdAt" json:"createdAt"`
}

// RedemptionRecord is a customer's redemption at
// customers/{customerId}/redemptions/{id}.
type RedemptionRecord struct {
	ID          string    `firestore:"-" json:"id"`
	MerchantID  string    `firestore:"merchantId" json:"merchantId"`
	RewardID    string    `firestore:"rewardId" json:"rewardId"`
	RewardName  string    `firestore:"rewardName" json:"rewardName"`
	PointsSpent int64     `firestore:"pointsSpent" json:"pointsSpent"`
	RedeemedAt  time.Time `firestore:"redemptionDate" json:"redemptionDate"`
}
