package view

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tapadmin/internal/domain/entity"
)

func locatedMerchant(id string, lat, lng float64) *entity.Merchant {
	return &entity.Merchant{
		ID: id,
		Location: &entity.Location{
			Coordinates: entity.Coordinates{Latitude: lat, Longitude: lng},
		},
	}
}

func TestMerchantDistance(t *testing.T) {
	operaHouse := orb.Point{151.2153, -33.8568}

	// Sydney CBD is roughly a kilometer from the Opera House; Parramatta is
	// over twenty kilometers out.
	cbd := MerchantDistance(locatedMerchant("cbd", -33.8688, 151.2093), operaHouse)
	parramatta := MerchantDistance(locatedMerchant("parra", -33.8150, 151.0011), operaHouse)
	assert.Greater(t, parramatta, cbd)
	assert.Greater(t, cbd, 0.0)

	// No location document resolves to +Inf so it sorts after everything.
	assert.True(t, math.IsInf(MerchantDistance(&entity.Merchant{ID: "nowhere"}, operaHouse), 1))
}

func TestSortMerchantsByDistance(t *testing.T) {
	operaHouse := orb.Point{151.2153, -33.8568}
	merchants := []*entity.Merchant{
		locatedMerchant("parra", -33.8150, 151.0011),
		{ID: "nowhere"},
		locatedMerchant("cbd", -33.8688, 151.2093),
	}

	SortMerchantsByDistance(merchants, operaHouse, Ascending)
	require.Len(t, merchants, 3)
	assert.Equal(t, "cbd", merchants[0].ID)
	assert.Equal(t, "parra", merchants[1].ID)
	assert.Equal(t, "nowhere", merchants[2].ID)

	// Descending flips the located merchants but the unlocated one stays
	// pinned to the tail.
	SortMerchantsByDistance(merchants, operaHouse, Descending)
	assert.Equal(t, "parra", merchants[0].ID)
	assert.Equal(t, "cbd", merchants[1].ID)
	assert.Equal(t, "nowhere", merchants[2].ID)
}
