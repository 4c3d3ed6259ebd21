package entity

// RewardSource tags which of the three physical locations a merged admin
// reward row was read from.
type RewardSource string

const (
	RewardSourceGlobal   RewardSource = "global"
	RewardSourceMerchant RewardSource = "merchant"
	RewardSourceCustomer RewardSource = "customer"
)

// Reward visibility values.
const (
	RewardVisibilityGlobal      = "global"
	RewardVisibilitySpecific    = "specific"
	RewardVisibilityNew         = "new"
	RewardVisibilityConditional = "conditional"
)

// Condition is a typed qualification entry on a reward.
type Condition struct {
	Type  string `firestore:"type" json:"type"`
	Value any    `firestore:"value" json:"value"`
}

// Limitation is a typed usage cap on a reward; customerLimit is the one the
// admin views surface.
type Limitation struct {
	Type  string `firestore:"type" json:"type"`
	Value any    `firestore:"value" json:"value"`
}

// RewardTypeDetails carries family-specific fields of a reward.
type RewardTypeDetails struct {
	Type            string  `firestore:"type" json:"type"` // fixedDiscount|percentageDiscount|freeItem|bundle|mystery
	DiscountValue   float64 `firestore:"discountValue" json:"discountValue,omitempty"`
	DiscountType    string  `firestore:"discountType" json:"discountType,omitempty"` // fixed|percentage
	AppliesTo       string  `firestore:"appliesTo" json:"appliesTo,omitempty"`
	MinimumPurchase float64 `firestore:"minimumPurchase" json:"minimumPurchase,omitempty"`
	ItemName        string  `firestore:"itemName" json:"itemName,omitempty"`
	ItemDescription string  `firestore:"itemDescription" json:"itemDescription,omitempty"`
}

// Reward is the shared document shape written to up to three locations:
// merchants/{mid}/rewards/{id}, customers/{cid}/rewards/{id} and the global
// rewards/{id} collection, all under one generated id.
//
// CreatedAt and UpdatedAt are deliberately untyped: historical writers stored
// native timestamps, ISO strings, or nothing, and the admin read path
// normalizes whatever it finds.
type Reward struct {
	ID                   string             `firestore:"-" json:"id"`
	RewardName           string             `firestore:"rewardName" json:"rewardName"`
	Description          string             `firestore:"description" json:"description"`
	Type                 string             `firestore:"type" json:"type"`
	ProgramType          string             `firestore:"programType" json:"programType,omitempty"`
	PIN                  string             `firestore:"pin" json:"pin"`
	RewardVisibility     string             `firestore:"rewardVisibility" json:"rewardVisibility"`
	IsActive             bool               `firestore:"isActive" json:"isActive"`
	Status               string             `firestore:"status" json:"status"`
	PointsCost           int64              `firestore:"pointsCost" json:"pointsCost"`
	MinSpend             float64            `firestore:"minSpend" json:"minSpend"`
	RewardTypeDetails    *RewardTypeDetails `firestore:"rewardTypeDetails" json:"rewardTypeDetails,omitempty"`
	Conditions           []Condition        `firestore:"conditions" json:"conditions"`
	Limitations          []Limitation       `firestore:"limitations" json:"limitations"`
	MerchantID           string             `firestore:"merchantId" json:"merchantId,omitempty"`
	CustomerID           string             `firestore:"customerId" json:"customerId,omitempty"`
	RedemptionCount      int64              `firestore:"redemptionCount" json:"redemptionCount"`
	UniqueCustomersCount int64              `firestore:"uniqueCustomersCount" json:"uniqueCustomersCount"`
	UniqueCustomerIDs    []string           `firestore:"uniqueCustomerIds" json:"uniqueCustomerIds,omitempty"`
	LastRedeemedAt       any                `firestore:"lastRedeemedAt" json:"lastRedeemedAt,omitempty"`

	// Introductory reward extras.
	IsIntroductoryReward bool    `firestore:"isIntroductoryReward" json:"isIntroductoryReward,omitempty"`
	FundedByTapLoyalty   bool    `firestore:"fundedByTapLoyalty" json:"fundedByTapLoyalty,omitempty"`
	MaxValue             float64 `firestore:"maxValue" json:"maxValue,omitempty"`
	ItemName             string  `firestore:"itemName" json:"itemName,omitempty"`
	VoucherAmount        float64 `firestore:"voucherAmount" json:"voucherAmount,omitempty"`
	ItemValue            float64 `firestore:"itemValue" json:"itemValue,omitempty"`

	// Network reward extras.
	DiscountValue     float64 `firestore:"discountValue" json:"discountValue,omitempty"`
	MinimumSpend      float64 `firestore:"minimumSpend" json:"minimumSpend,omitempty"`
	NetworkPointsCost float64 `firestore:"networkPointsCost" json:"networkPointsCost,omitempty"`
	IsNetworkReward   bool    `firestore:"isNetworkReward" json:"isNetworkReward,omitempty"`

	CreatedAt any `firestore:"createdAt" json:"createdAt,omitempty"`
	UpdatedAt any `firestore:"updatedAt" json:"updatedAt,omitempty"`
}

// RewardRow is one row of the merged admin reward view. DisplayID is
// "{parentId}-{rewardDocId}" for sub-scoped copies and the bare document id
// for global copies; CollectionPath addresses the one physical location this
// row was read from and is what delete operations resolve against.
type RewardRow struct {
	Reward

	DisplayID      string       `json:"displayId"`
	Source         RewardSource `json:"collection"`
	CollectionPath string       `json:"collectionPath"`
	MerchantName   string       `json:"merchantName,omitempty"`
	CustomerName   string       `json:"customerName,omitempty"`
	CreatedAtISO   string       `json:"createdAtIso"`
}
