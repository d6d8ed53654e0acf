// Package engine normalizes heterogeneous issue-tracker records into a
// canonical issue model and derives the dashboard aggregates from it. Every
// function here is pure: no I/O, no logging, no shared state.
package engine

import (
	"strings"

	"github.com/Amey2003/excel-issue-tracker/pkg/domain/model"
)

// normalizeKey is the comparison form of a raw key or alias
func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

// ResolveField returns the value of the first alias present in rec. Keys
// match case-insensitively after trimming; a key holding nil counts as absent.
func ResolveField(rec model.RawRecord, aliases []string) model.FieldValue {
	if len(rec) == 0 {
		return model.Unknown()
	}

	index := make(map[string]string, len(rec))
	for key := range rec {
		norm := normalizeKey(key)
		// Several raw keys may normalize alike; keep the lexically smallest so
		// lookups do not depend on map iteration order.
		if prev, ok := index[norm]; !ok || key < prev {
			index[norm] = key
		}
	}

	for _, alias := range aliases {
		key, ok := index[normalizeKey(alias)]
		if !ok {
			continue
		}
		if v := rec[key]; v != nil {
			return model.Resolved(v)
		}
	}
	return model.Unknown()
}
