package service

import (
	"context"

	"tapadmin/internal/domain/entity"
)

// RewardDraft is the structured output of the create_reward function call.
type RewardDraft struct {
	RewardName  string `json:"rewardName"`
	Description string `json:"description"`
	Type        string `json:"type"`
	PointsCost  int64  `json:"pointsCost"`
	Reasoning   string `json:"reasoning,omitempty"`
}

// RewardAgent drafts a personalized reward for one customer of a merchant by
// invoking a chat-completion backend with a function-calling schema.
type RewardAgent interface {
	// DraftReward builds the per-customer/per-merchant prompt and returns
	// the parsed function-call arguments.
	DraftReward(ctx context.Context, merchant *entity.Merchant, customer *entity.MerchantCustomer) (*RewardDraft, error)
}
