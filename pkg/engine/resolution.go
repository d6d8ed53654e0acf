package engine

import (
	"github.com/Amey2003/excel-issue-tracker/pkg/domain/model"
)

// CountSeverities returns the severity tile counts over all issues
func CountSeverities(issues []model.NormalizedIssue) model.SeverityCounts {
	var counts model.SeverityCounts
	for _, issue := range issues {
		counts.Inc(issue.Severity)
	}
	return counts
}

// BuildResolution counts resolved issues by severity
func BuildResolution(issues []model.NormalizedIssue) model.ResolutionSummary {
	var summary model.ResolutionSummary
	for _, issue := range issues {
		if !IsResolved(issue.State) {
			continue
		}
		summary.FixedCount++
		summary.BySeverity.Inc(issue.Severity)
	}
	if len(issues) > 0 {
		summary.ResolvedRatio = float64(summary.FixedCount) / float64(len(issues))
	}
	return summary
}
