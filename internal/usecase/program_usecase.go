package usecase

import (
	"context"
)

// CoffeeProgramInput creates a stamp-card program on a merchant.
type CoffeeProgramInput struct {
	PIN       string `json:"pin" validate:"required"`
	Frequency int    `json:"frequency" validate:"required,gt=0"`
	MinSpend  int    `json:"minspend" validate:"gte=0"`
	MinTime   int    `json:"mintime" validate:"gte=0"`
}

// VoucherProgramInput creates a recurring voucher program.
type VoucherProgramInput struct {
	RewardName     string  `json:"rewardName" validate:"required"`
	Description    string  `json:"description"`
	PIN            string  `json:"pin" validate:"required"`
	SpendRequired  float64 `json:"spendRequired" validate:"required,gt=0"`
	DiscountAmount float64 `json:"discountAmount" validate:"required,gt=0"`
}

// TransactionRewardInput creates a transaction-threshold program.
type TransactionRewardInput struct {
	RewardName  string `json:"rewardName" validate:"required"`
	Description string `json:"description"`
	PIN         string `json:"pin" validate:"required"`
	Threshold   int    `json:"threshold" validate:"required,gt=0"`
	Reward      string `json:"reward" validate:"required"`
}

// CashbackProgramInput creates the merchant's cashback program.
type CashbackProgramInput struct {
	ProgramName string  `json:"programName" validate:"required"`
	Description string  `json:"description"`
	PIN         string  `json:"pin" validate:"required"`
	Rate        float64 `json:"rate" validate:"required"`
}

// IntroductoryRewardInput creates a Tap-funded introductory reward. Exactly
// one of the three type-specific value fields applies, selected by Type.
type IntroductoryRewardInput struct {
	RewardName    string  `json:"rewardName" validate:"required"`
	Description   string  `json:"description" validate:"required"`
	Type          string  `json:"type" validate:"required,oneof=voucher freeItem"`
	PIN           string  `json:"pin" validate:"required"`
	ItemName      string  `json:"itemName"`
	VoucherAmount float64 `json:"voucherAmount"`
	ItemValue     float64 `json:"itemValue"`
}

// CustomRewardInput creates a fully custom reward. Only the basic-details
// and visibility steps of the wizard feed this shape; conditions and
// limitations arrive empty unless the caller provides them.
type CustomRewardInput struct {
	RewardName       string    `json:"rewardName" validate:"required"`
	Description      string    `json:"description"`
	Type             string    `json:"type" validate:"required"`
	PIN              string    `json:"pin" validate:"required"`
	PointsCost       int64     `json:"pointsCost" validate:"gte=0"`
	RewardVisibility string    `json:"rewardVisibility" validate:"required,oneof=global specific new conditional"`
	CustomerIDs      []string  `json:"customerIds"`
	Conditions       []InputKV `json:"conditions"`
	Limitations      []InputKV `json:"limitations"`
}

// InputKV is a typed {type, value} entry for conditions and limitations.
type InputKV struct {
	Type  string `json:"type" validate:"required"`
	Value any    `json:"value"`
}

// NetworkRewardInput creates a network reward redeemable across the Tap
// network. Each field failure carries its own message.
type NetworkRewardInput struct {
	RewardName        string  `json:"rewardName"`
	Description       string  `json:"description"`
	PIN               string  `json:"pin"`
	DiscountValue     float64 `json:"discountValue"`
	MinimumSpend      float64 `json:"minimumSpend"`
	NetworkPointsCost float64 `json:"networkPointsCost"`
}

// ProgramUsecase defines the seven reward-program builders. Builders that
// produce reward documents return the generated reward id.
type ProgramUsecase interface {
	// CreateCoffeeProgram embeds a stamp-card program on the merchant.
	// Rejected when the merchant already has one.
	CreateCoffeeProgram(ctx context.Context, merchantID string, input *CoffeeProgramInput) error

	// CreateVoucherProgram embeds a recurring voucher program and writes its
	// reward document.
	CreateVoucherProgram(ctx context.Context, merchantID string, input *VoucherProgramInput) (string, error)

	// CreateTransactionReward embeds a transaction-threshold program and
	// writes its reward document.
	CreateTransactionReward(ctx context.Context, merchantID string, input *TransactionRewardInput) (string, error)

	// CreateCashbackProgram sets the merchant's single cashback program.
	// Rejected when one already exists.
	CreateCashbackProgram(ctx context.Context, merchantID string, input *CashbackProgramInput) error

	// CreateIntroductoryReward writes a Tap-funded introductory reward,
	// enforcing the per-merchant cap of three inside the write transaction.
	CreateIntroductoryReward(ctx context.Context, merchantID string, input *IntroductoryRewardInput) (string, error)

	// CreateCustomReward writes a fully custom reward to the merchant,
	// global and (for specific visibility) customer locations.
	CreateCustomReward(ctx context.Context, merchantID string, input *CustomRewardInput) (string, error)

	// CreateNetworkReward writes a network reward.
	CreateNetworkReward(ctx context.Context, merchantID string, input *NetworkRewardInput) (string, error)
}
