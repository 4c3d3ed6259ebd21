package entity

import "time"

// CoffeeProgram is a stamp-card program embedded on the merchant document.
// Frequency is the total stamp count (buy frequency-1, get one free).
type CoffeeProgram struct {
	PIN       string    `firestore:"pin" json:"pin"`
	Frequency int       `firestore:"frequency" json:"frequency"`
	MinSpend  int       `firestore:"minspend" json:"minspend"`
	MinTime   int       `firestore:"mintime" json:"mintime"`
	Active    bool      `firestore:"active" json:"active"`
	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
}

// VoucherProgram is a recurring voucher embedded on the merchant document:
// every SpendRequired dollars of lifetime spend earns a DiscountAmount voucher.
type VoucherProgram struct {
	RewardName     string    `firestore:"rewardName" json:"rewardName"`
	Description    string    `firestore:"description" json:"description"`
	PIN            string    `firestore:"pin" json:"pin"`
	SpendRequired  float64   `firestore:"spendRequired" json:"spendRequired"`
	DiscountAmount float64   `firestore:"discountAmount" json:"discountAmount"`
	Type           string    `firestore:"type" json:"type"` // recurring_voucher
	IsActive       bool      `firestore:"isActive" json:"isActive"`
	CreatedAt      time.Time `firestore:"createdAt" json:"createdAt"`
}

// TransactionProgram rewards a customer once their lifetime transaction
// count reaches the threshold.
type TransactionProgram struct {
	RewardName  string    `firestore:"rewardName" json:"rewardName"`
	Description string    `firestore:"description" json:"description"`
	PIN         string    `firestore:"pin" json:"pin"`
	Threshold   int       `firestore:"threshold" json:"threshold"`
	Reward      string    `firestore:"reward" json:"reward"`
	IsActive    bool      `firestore:"isActive" json:"isActive"`
	CreatedAt   time.Time `firestore:"createdAt" json:"createdAt"`
}

// CashbackProgram accrues Rate percent of each transaction as points.
// A merchant has at most one.
type CashbackProgram struct {
	ProgramName string    `firestore:"programName" json:"programName"`
	Description string    `firestore:"description" json:"description"`
	PIN         string    `firestore:"pin" json:"pin"`
	Rate        float64   `firestore:"rate" json:"rate"` // percent, (0, 100]
	IsActive    bool      `firestore:"isActive" json:"isActive"`
	CreatedAt   time.Time `firestore:"createdAt" json:"createdAt"`
}
