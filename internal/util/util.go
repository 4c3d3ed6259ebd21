// Package util contains small shared helpers.
package util

import (
	"encoding/json"
	"strings"
	"time"
)

// AsMap converts an entity into its loosely-typed document form via its JSON
// tags. The admin view derivation walks this form so dotted sort keys behave
// the same way they do against the raw store documents.
func AsMap(v any) map[string]any {
	raw, err := json.Marshal(v)
	if err != nil {
		return map[string]any{}
	}

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return map[string]any{}
	}

	return m
}

// LookupPath resolves a dotted key against a document map. Any missing
// intermediate or leaf yields the empty string so absent values sort first
// in ascending order.
func LookupPath(m map[string]any, path string) any {
	current := any(m)
	for _, segment := range strings.Split(path, ".") {
		obj, ok := current.(map[string]any)
		if !ok {
			return ""
		}
		current, ok = obj[segment]
		if !ok {
			return ""
		}
	}
	if current == nil {
		return ""
	}

	return current
}

// NormalizeTimestamp renders a heterogeneous createdAt value as an ISO-8601
// string. Native timestamps convert directly, strings pass through, and
// anything else falls back to generic date parsing.
func NormalizeTimestamp(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case time.Time:
		return t.UTC().Format(time.RFC3339)
	case *time.Time:
		if t == nil {
			return ""
		}

		return t.UTC().Format(time.RFC3339)
	case string:
		return t
	default:
		raw, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		var parsed time.Time
		if err := json.Unmarshal(raw, &parsed); err != nil {
			return ""
		}

		return parsed.UTC().Format(time.RFC3339)
	}
}
