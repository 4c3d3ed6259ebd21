package view

import (
	"tapadmin/internal/domain/entity"
	"tapadmin/internal/util"
)

// MerchantSortValue resolves a merchant sort key. The synthetic keys
// (contact, location, and the name cross-fallback pair) compose their
// underlying fields; every other key walks the document form as a dotted
// path, so address.suburb and friends work without enumeration.
func MerchantSortValue(m *entity.Merchant, key string) any {
	switch key {
	case "merchantName":
		if m.MerchantName != "" {
			return m.MerchantName
		}

		return m.TradingName
	case "tradingName":
		if m.TradingName != "" {
			return m.TradingName
		}

		return m.MerchantName
	case "contact":
		return m.Representative.Name + " " + m.PrimaryEmail + " " + m.BusinessPhone
	case "location":
		return m.Address.Suburb + " " + m.Address.State + " " + m.Address.Street
	default:
		return util.LookupPath(util.AsMap(m), key)
	}
}

// MerchantSearchFields is the free-text allow-list for the merchants list.
func MerchantSearchFields(m *entity.Merchant) []string {
	return []string{
		m.MerchantName,
		m.TradingName,
		m.ID,
		m.BusinessType,
		m.PrimaryEmail,
		m.Address.Suburb,
		m.Representative.Name,
		m.ABN,
	}
}

// CustomerSortValue resolves a sort key against an aggregated customer row.
func CustomerSortValue(row entity.CustomerRow, key string) any {
	switch key {
	case "fullName":
		return row.FullName
	case "email":
		return row.Email
	case "membershipTier":
		return row.MembershipTier
	case "totalLifetimeSpend":
		return row.TotalLifetimeSpend
	case "totalTransactions":
		return row.TotalTransactions
	case "totalRedemptions":
		return row.TotalRedemptions
	case "merchantCount":
		return len(row.Merchants)
	default:
		return util.LookupPath(util.AsMap(row), key)
	}
}

// CustomerSearchFields is the free-text allow-list for the customers list.
// Affiliated merchant names are included so an admin can answer "who shops
// at X" from the same box.
func CustomerSearchFields(row entity.CustomerRow) []string {
	fields := []string{row.FullName, row.Email, row.CustomerID, row.MembershipTier}
	for _, m := range row.Merchants {
		fields = append(fields, m.MerchantName)
	}

	return fields
}

// RewardSortValue resolves a sort key against a merged reward row.
func RewardSortValue(row entity.RewardRow, key string) any {
	switch key {
	case "rewardName":
		return row.RewardName
	case "pointsCost":
		return row.PointsCost
	case "redemptionCount":
		return row.RedemptionCount
	case "collection":
		return string(row.Source)
	case "merchantName":
		return row.MerchantName
	case "createdAt":
		return row.CreatedAtISO
	default:
		return util.LookupPath(util.AsMap(row), key)
	}
}

// RewardSearchFields is the free-text allow-list for the merged rewards list.
func RewardSearchFields(row entity.RewardRow) []string {
	return []string{
		row.RewardName,
		row.Description,
		row.Type,
		string(row.Source),
		row.MerchantName,
		row.CustomerName,
		row.DisplayID,
	}
}
