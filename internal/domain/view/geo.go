package view

import (
	"math"
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"

	"tapadmin/internal/domain/entity"
)

// MerchantDistance returns the great-circle distance in meters from origin to
// the merchant's geocoded coordinates, or +Inf when the merchant has no
// location document.
func MerchantDistance(m *entity.Merchant, origin orb.Point) float64 {
	if m.Location == nil {
		return math.Inf(1)
	}

	return geo.Distance(origin, m.Location.Coordinates.Point())
}

// SortMerchantsByDistance orders merchants in place by distance from origin.
// Merchants without a location sort after every located one regardless of
// direction; ties keep their incoming order.
func SortMerchantsByDistance(merchants []*entity.Merchant, origin orb.Point, dir Direction) {
	distances := make([]float64, len(merchants))
	for i, m := range merchants {
		distances[i] = MerchantDistance(m, origin)
	}

	indices := make([]int, len(merchants))
	for i := range indices {
		indices[i] = i
	}
	sort.SliceStable(indices, func(a, b int) bool {
		da, db := distances[indices[a]], distances[indices[b]]
		if math.IsInf(da, 1) != math.IsInf(db, 1) {
			return math.IsInf(db, 1)
		}
		if dir == Descending {
			return da > db
		}

		return da < db
	})

	ordered := make([]*entity.Merchant, len(merchants))
	for i, idx := range indices {
		ordered[i] = merchants[idx]
	}
	copy(merchants, ordered)
}
