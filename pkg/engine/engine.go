package engine

import (
	"github.com/Amey2003/excel-issue-tracker/pkg/domain/model"
	"github.com/Amey2003/excel-issue-tracker/pkg/domain/types"
)

// Filter returns the issues whose state belongs to bucket, in input order
func Filter(issues []model.NormalizedIssue, bucket types.StateBucket) []model.NormalizedIssue {
	var out []model.NormalizedIssue
	for _, issue := range issues {
		if InStateBucket(issue.State, bucket) {
			out = append(out, issue)
		}
	}
	return out
}

// Aggregate derives every dashboard view from one snapshot of issues
func Aggregate(issues []model.NormalizedIssue) *model.Dashboard {
	matrixActive := Filter(issues, types.StateBucketMatrixActive)
	devActive := Filter(issues, types.StateBucketDevActive)

	return &model.Dashboard{
		TotalIssues:     len(issues),
		Tiles:           CountSeverities(issues),
		StateMatrix:     BuildPivot(matrixActive, StateRows(matrixActive), types.DimensionState),
		BugTypeMatrix:   BuildPivot(matrixActive, BugTypeRows(matrixActive), types.DimensionBugType),
		DeveloperMatrix: BuildDeveloperMatrix(devActive),
		Trend:           BuildTrend(issues),
		Resolution:      BuildResolution(issues),
		FoundDates:      FoundDayKeys(devActive),
	}
}

// BuildDeveloperMatrix builds the developer workload matrix with rows
// derived from the given issues
func BuildDeveloperMatrix(issues []model.NormalizedIssue) *model.PivotMatrix {
	return BuildPivot(issues, DeveloperRows(issues), types.DimensionAssignee)
}

// AllDays selects the unfiltered developer matrix
const AllDays = "all"

// DeveloperMatrixForDay rebuilds the developer matrix over dev-active issues
// found on dayKey. An empty key or AllDays means no date filter.
func DeveloperMatrixForDay(issues []model.NormalizedIssue, dayKey string) *model.PivotMatrix {
	devActive := Filter(issues, types.StateBucketDevActive)
	if dayKey == "" || dayKey == AllDays {
		return BuildDeveloperMatrix(devActive)
	}
	return BuildDeveloperMatrix(FilterByFoundDay(devActive, dayKey))
}
