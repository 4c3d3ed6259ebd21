// Package view derives admin list views: free-text filtering and single-key
// sorting over aggregated in-memory rows. Everything here is pure.
package view

import (
	"fmt"
	"sort"
	"strings"
)

// Direction is a sort direction for a list column.
type Direction string

const (
	Ascending  Direction = "ascending"
	Descending Direction = "descending"
)

// SortState is the current sort column and direction of a list.
type SortState struct {
	Key       string    `json:"key"`
	Direction Direction `json:"direction"`
}

// Toggle applies a column-header click: re-clicking the active column flips
// the direction, clicking a new column resets to ascending.
func (s SortState) Toggle(key string) SortState {
	if s.Key == key {
		if s.Direction == Ascending {
			return SortState{Key: key, Direction: Descending}
		}

		return SortState{Key: key, Direction: Ascending}
	}

	return SortState{Key: key, Direction: Ascending}
}

// Resolver maps a sort key to the comparable value for one row.
type Resolver[T any] func(row T, key string) any

// Sort orders rows in place by the resolved key value. The sort is stable,
// strings compare case-folded, numbers compare numerically, and missing
// values compare as the empty string.
func Sort[T any](rows []T, key string, dir Direction, resolve Resolver[T]) {
	keys := make([]any, len(rows))
	for i := range rows {
		keys[i] = resolve(rows[i], key)
	}

	indices := make([]int, len(rows))
	for i := range indices {
		indices[i] = i
	}
	sort.SliceStable(indices, func(a, b int) bool {
		cmp := Compare(keys[indices[a]], keys[indices[b]])
		if dir == Descending {
			return cmp > 0
		}

		return cmp < 0
	})

	ordered := make([]T, len(rows))
	for i, idx := range indices {
		ordered[i] = rows[idx]
	}
	copy(rows, ordered)
}

// Compare orders two resolved sort values. Both-numeric pairs compare
// numerically; everything else compares as case-folded strings.
func Compare(a, b any) int {
	na, aNum := asNumber(a)
	nb, bNum := asNumber(b)
	if aNum && bNum {
		switch {
		case na < nb:
			return -1
		case na > nb:
			return 1
		default:
			return 0
		}
	}

	return strings.Compare(foldString(a), foldString(b))
}

// Matches reports whether needle is a case-insensitive substring of any of
// the given fields. An empty needle matches everything.
func Matches(needle string, fields ...string) bool {
	needle = strings.ToLower(strings.TrimSpace(needle))
	if needle == "" {
		return true
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}

	return false
}

func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

func foldString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return strings.ToLower(s)
	case bool:
		if s {
			return "true"
		}

		return "false"
	default:
		return strings.ToLower(fmt.Sprint(v))
	}
}
