package engine

import (
	"sort"

	"github.com/Amey2003/excel-issue-tracker/pkg/domain/model"
)

// BuildTrend counts trend-active issues per found day. Issues without a
// parseable found date are skipped; days without issues are not emitted.
func BuildTrend(issues []model.NormalizedIssue) model.TrendSeries {
	counts := make(map[string]int)
	days := make(map[string]model.CanonicalDate)
	for _, issue := range issues {
		if !IsTrendActive(issue.State) {
			continue
		}
		r := NormalizeDateValue(issue.FoundDate)
		key, ok := r.Key()
		if !ok {
			continue
		}
		counts[key]++
		days[key] = r.Date
	}

	keys := make([]string, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	series := make(model.TrendSeries, len(keys))
	for i, key := range keys {
		series[i] = model.TrendPoint{Date: days[key], Count: counts[key]}
	}
	return series
}

// FoundDayKeys returns the distinct sorted day keys of the issues' found dates
func FoundDayKeys(issues []model.NormalizedIssue) []string {
	seen := make(map[string]bool)
	keys := []string{}
	for _, issue := range issues {
		key, ok := NormalizeDateValue(issue.FoundDate).Key()
		if !ok || seen[key] {
			continue
		}
		seen[key] = true
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// FilterByFoundDay keeps the issues whose found date normalizes to dayKey
func FilterByFoundDay(issues []model.NormalizedIssue, dayKey string) []model.NormalizedIssue {
	var out []model.NormalizedIssue
	for _, issue := range issues {
		if key, ok := NormalizeDateValue(issue.FoundDate).Key(); ok && key == dayKey {
			out = append(out, issue)
		}
	}
	return out
}
