package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tapadmin/internal/domain/entity"
)

func TestParseDraft(t *testing.T) {
	draft, err := parseDraft(map[string]any{
		"rewardName":  "Free Flat White",
		"description": "A free coffee on your next visit.",
		"type":        "freeItem",
		"pointsCost":  float64(150),
		"reasoning":   "Frequent morning visitor.",
	})
	require.NoError(t, err)

	assert.Equal(t, "Free Flat White", draft.RewardName)
	assert.Equal(t, "freeItem", draft.Type)
	assert.Equal(t, int64(150), draft.PointsCost)
}

func TestParseDraft_MissingName(t *testing.T) {
	_, err := parseDraft(map[string]any{"description": "x"})
	assert.Error(t, err)
}

func TestBuildPrompt(t *testing.T) {
	merchant := &entity.Merchant{TradingName: "Bean There", BusinessType: "cafe"}
	customer := &entity.MerchantCustomer{
		FullName:                 "Alex Chen",
		TotalLifetimeSpend:       240.50,
		LifetimeTransactionCount: 31,
		MembershipTier:           "Silver",
	}

	prompt := buildPrompt(merchant, customer)
	assert.Contains(t, prompt, "Bean There")
	assert.Contains(t, prompt, "Alex Chen")
	assert.Contains(t, prompt, "$240.50")
	assert.Contains(t, prompt, `"Silver"`)
}
