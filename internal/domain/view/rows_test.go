package view

import (
	"testing"

	"tapadmin/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestMerchantSortValue(t *testing.T) {
	m := &entity.Merchant{
		MerchantName: "Corner Cafe",
		TradingName:  "CC Trading",
		PrimaryEmail: "ops@corner.example.com",
		Address:      entity.Address{Street: "1 High St", Suburb: "Newtown", State: "NSW"},
		Representative: entity.Representative{
			Name: "Alice Wong",
		},
	}

	assert.Equal(t, "Corner Cafe", MerchantSortValue(m, "merchantName"))
	assert.Equal(t, "CC Trading", MerchantSortValue(m, "tradingName"))

	// Cross-fallback when one of the names is empty.
	assert.Equal(t, "CC Trading", MerchantSortValue(&entity.Merchant{TradingName: "CC Trading"}, "merchantName"))
	assert.Equal(t, "Corner Cafe", MerchantSortValue(&entity.Merchant{MerchantName: "Corner Cafe"}, "tradingName"))

	// Synthetic keys compose their parts.
	assert.Contains(t, MerchantSortValue(m, "contact"), "Alice Wong")
	assert.Contains(t, MerchantSortValue(m, "location"), "Newtown")

	// Unknown keys walk the document form as a dotted path.
	assert.Equal(t, "NSW", MerchantSortValue(m, "address.state"))
	assert.Equal(t, "", MerchantSortValue(m, "address.missing"))
}

func TestCustomerSortValue(t *testing.T) {
	row := entity.CustomerRow{
		FullName:           "Alice Wong",
		TotalLifetimeSpend: 150.5,
		Merchants: []entity.MerchantAffiliation{
			{MerchantID: "m1", MerchantName: "Corner Cafe"},
			{MerchantID: "m2", MerchantName: "Harbour Deli"},
		},
	}

	assert.Equal(t, "Alice Wong", CustomerSortValue(row, "fullName"))
	assert.Equal(t, 150.5, CustomerSortValue(row, "totalLifetimeSpend"))
	assert.Equal(t, 2, CustomerSortValue(row, "merchantCount"))
}

func TestRewardSearchFields_IncludeDisplayID(t *testing.T) {
	row := entity.RewardRow{
		Reward:    entity.Reward{RewardName: "Free Muffin", Type: "freeItem"},
		DisplayID: "m1-r2",
		Source:    entity.RewardSourceMerchant,
	}

	assert.True(t, Matches("m1-r2", RewardSearchFields(row)...))
	assert.True(t, Matches("merchant", RewardSearchFields(row)...))
	assert.True(t, Matches("muffin", RewardSearchFields(row)...))
	assert.False(t, Matches("cashback", RewardSearchFields(row)...))
}
