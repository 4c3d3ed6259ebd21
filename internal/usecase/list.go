// Package usecase defines the application-level interfaces of the admin
// console.
package usecase

import (
	"github.com/paulmach/orb"

	"tapadmin/internal/domain/view"
)

// ListQuery carries the free-text filter and sort state of a list view. The
// near pair switches the merchants list to proximity ordering; both
// coordinates must be present for it to take effect.
type ListQuery struct {
	Search        string         `json:"search" query:"search"`
	SortKey       string         `json:"sortKey" query:"sortKey"`
	SortDirection view.Direction `json:"sortDirection" query:"sortDirection"`
	NearLat       *float64       `json:"nearLat" query:"nearLat"`
	NearLng       *float64       `json:"nearLng" query:"nearLng"`
}

// NearPoint returns the proximity origin as an orb point (lon, lat order)
// when both coordinates were supplied.
func (q ListQuery) NearPoint() (orb.Point, bool) {
	if q.NearLat == nil || q.NearLng == nil {
		return orb.Point{}, false
	}

	return orb.Point{*q.NearLng, *q.NearLat}, true
}

// Direction returns the validated sort direction, defaulting to ascending.
func (q ListQuery) Direction() view.Direction {
	if q.SortDirection == view.Descending {
		return view.Descending
	}

	return view.Ascending
}

// BulkDeleteReport is the per-item outcome of a concurrent bulk delete.
// Deletes that succeeded before a failure are not rolled back; Failed maps
// each failed id to its error message.
type BulkDeleteReport struct {
	Requested int               `json:"requested"`
	Deleted   int               `json:"deleted"`
	Failed    map[string]string `json:"failed,omitempty"`
}

// Ok reports whether every delete succeeded.
func (r *BulkDeleteReport) Ok() bool {
	return len(r.Failed) == 0
}
