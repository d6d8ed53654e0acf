package engine

import (
	"strings"
	"unicode"

	"github.com/Amey2003/excel-issue-tracker/pkg/domain/types"
)

type stateMatcher func(state string) bool

type stateRule struct {
	bucket types.StateBucket
	match  stateMatcher
}

// exactUpper matches the uppercased state exactly, without trimming
func exactUpper(values ...string) stateMatcher {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return func(state string) bool {
		return set[strings.ToUpper(state)]
	}
}

// compactUpper matches the uppercased state with all whitespace removed
func compactUpper(values ...string) stateMatcher {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return func(state string) bool {
		compact := strings.Map(func(r rune) rune {
			if unicode.IsSpace(r) {
				return -1
			}
			return r
		}, strings.ToUpper(state))
		return set[compact]
	}
}

// containsUpper matches when the trimmed, uppercased state contains any value
func containsUpper(values ...string) stateMatcher {
	return func(state string) bool {
		s := strings.ToUpper(strings.TrimSpace(state))
		for _, v := range values {
			if strings.Contains(s, v) {
				return true
			}
		}
		return false
	}
}

var stateRules = []stateRule{
	{bucket: types.StateBucketMatrixActive, match: exactUpper("ASSIGNED", "REOPEN", "RFT")},
	{bucket: types.StateBucketDevActive, match: compactUpper("ASSIGNED", "INDEV", "INPROGRESS", "REOPEN")},
	{bucket: types.StateBucketTrendActive, match: containsUpper("ASSIGNED", "DEV", "REOPEN", "PROGRESS")},
	{bucket: types.StateBucketResolved, match: exactUpper("FIXED", "RESOLVED", "CLOSED")},
}

// InStateBucket reports whether state belongs to bucket. Unknown buckets
// match nothing.
func InStateBucket(state string, bucket types.StateBucket) bool {
	for _, rule := range stateRules {
		if rule.bucket == bucket {
			return rule.match(state)
		}
	}
	return false
}

// ClassifyState returns every bucket state belongs to, in rule order
func ClassifyState(state string) []types.StateBucket {
	var buckets []types.StateBucket
	for _, rule := range stateRules {
		if rule.match(state) {
			buckets = append(buckets, rule.bucket)
		}
	}
	return buckets
}

// IsMatrixActive reports whether the state feeds the state and bug type matrices
func IsMatrixActive(state string) bool {
	return InStateBucket(state, types.StateBucketMatrixActive)
}

// IsDevActive reports whether the state feeds the developer workload matrix
func IsDevActive(state string) bool {
	return InStateBucket(state, types.StateBucketDevActive)
}

// IsTrendActive reports whether the state feeds the found-date trend
func IsTrendActive(state string) bool {
	return InStateBucket(state, types.StateBucketTrendActive)
}

// IsResolved reports whether the state counts as resolved
func IsResolved(state string) bool {
	return InStateBucket(state, types.StateBucketResolved)
}
