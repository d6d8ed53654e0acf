package engine_test

import (
	"errors"
	"testing"

	"github.com/Amey2003/excel-issue-tracker/pkg/domain/model"
	"github.com/Amey2003/excel-issue-tracker/pkg/domain/types"
	"github.com/Amey2003/excel-issue-tracker/pkg/engine"
	"github.com/m-mizutani/gt"
)

func aggregateJSON(t *testing.T, payload string) ([]model.NormalizedIssue, *model.Dashboard) {
	t.Helper()
	records, err := engine.DecodeRecords([]byte(payload))
	gt.NoError(t, err).Required()
	issues := engine.NewNormalizer(nil).NormalizeAll(records)
	return issues, engine.Aggregate(issues)
}

func TestAggregateResolvedIssue(t *testing.T) {
	issues, d := aggregateJSON(t, `[{
		"bug_type": "UI", "severity": "P0", "state": "Fixed", "assigned_to": "Ann",
		"module": "Login", "bug_found": "01-02-2024", "bug_fixed": "03-02-2024"
	}]`)

	gt.Equal(t, len(issues), 1)
	gt.Equal(t, issues[0].Severity, model.SeverityCritical)
	gt.Equal(t, issues[0].Type, "UI")
	gt.Equal(t, issues[0].Module, "Login")

	gt.Equal(t, d.TotalIssues, 1)
	gt.Equal(t, d.Tiles, model.SeverityCounts{0, 1, 0, 0, 0})
	gt.Equal(t, d.Resolution.FixedCount, 1)
	gt.Equal(t, d.Resolution.BySeverity, model.SeverityCounts{0, 1, 0, 0, 0})
	gt.Equal(t, d.Resolution.ResolvedRatio, 1.0)

	// Fixed is neither matrix-active nor trend-active
	gt.Equal(t, d.StateMatrix.GrandTotal, 0)
	gt.Equal(t, len(d.Trend), 0)
}

func TestAggregateUnrecognizedSeverity(t *testing.T) {
	_, d := aggregateJSON(t, `[{"Severity": "P9-unknown", "State": "Assigned"}]`)
	gt.Equal(t, d.Tiles, model.SeverityCounts{0, 0, 0, 0, 1})
	gt.Equal(t, d.StateMatrix.Cell("Assigned", model.SeverityMinor), 1)
}

func TestAggregateUnknownFoundDate(t *testing.T) {
	_, d := aggregateJSON(t, `[
		{"State": "Assigned", "Severity": "Major", "Bug Type": "UI", "Assigned To": "Ann", "Bug Found Date": "Unknown"},
		{"State": "In Dev", "Severity": "Minor", "Bug Type": "UI", "Assigned To": "Bob", "Bug Found Date": "Unknown"}
	]`)

	gt.Equal(t, d.Tiles.Total(), 2)
	gt.Equal(t, d.StateMatrix.Cell("Assigned", model.SeverityMajor), 1)
	gt.Equal(t, d.BugTypeMatrix.Cell("UI", model.SeverityMajor), 1)
	gt.Equal(t, d.DeveloperMatrix.Cell("Ann", model.SeverityMajor), 1)
	gt.Equal(t, d.DeveloperMatrix.Cell("Bob", model.SeverityMinor), 1)
	gt.Equal(t, len(d.Trend), 0)
	gt.Equal(t, d.FoundDates, []string{})
}

func TestAggregateStateTiersAreIndependent(t *testing.T) {
	_, d := aggregateJSON(t, `[
		{"State": "in development", "Bug Found Date": "2024-03-05", "Assigned To": "Ann"},
		{"State": "In-Dev ", "Bug Found Date": "2024-03-05", "Assigned To": "Ann"}
	]`)

	gt.Equal(t, len(d.Trend), 1)
	gt.Equal(t, d.Trend[0].Count, 2)
	gt.Equal(t, d.StateMatrix.GrandTotal, 0)
	gt.Equal(t, d.BugTypeMatrix.GrandTotal, 0)
	gt.Equal(t, d.DeveloperMatrix.GrandTotal, 0)
}

func TestAggregateRejectsNonArray(t *testing.T) {
	records, err := engine.DecodeRecords([]byte(`{"State": "Assigned"}`))
	gt.True(t, errors.Is(err, model.ErrInvalidShape))
	gt.Equal(t, len(records), 0)
}

func TestAggregateViews(t *testing.T) {
	issues, d := aggregateJSON(t, `[
		{"State": "Assigned", "Severity": "Blocker", "Bug Type": "UI", "Assigned To": "Ann", "Bug Found Date": "2024-03-05"},
		{"State": "RFT", "Severity": "Critical", "Bug Type": "Logic", "Assigned To": "Bob", "Bug Found Date": 45357},
		{"State": "In Dev", "Severity": "Major", "Bug Type": "UI", "Assigned To": "Bob", "Bug Found Date": "06/03/2024"},
		{"State": "Fixed", "Severity": "Normal", "Bug Type": "UI", "Assigned To": "Ann", "Bug Found Date": "2024-03-01"},
		{"State": "Reopen", "Severity": "Minor", "Assigned To": "Ann", "Bug Found Date": "2024-03-05"}
	]`)

	gt.Equal(t, d.TotalIssues, 5)
	gt.Equal(t, d.Tiles, model.SeverityCounts{1, 1, 1, 1, 1})

	t.Run("state matrix", func(t *testing.T) {
		gt.Equal(t, d.StateMatrix.Dimension, types.DimensionState)
		gt.Equal(t, d.StateMatrix.Labels(), []string{"Assigned", "RFT", "Reopen"})
		gt.Equal(t, d.StateMatrix.GrandTotal, 3)
		gt.Equal(t, d.StateMatrix.Excluded, 0)
	})

	t.Run("bug type matrix", func(t *testing.T) {
		gt.Equal(t, d.BugTypeMatrix.Labels(), []string{"Logic", "UI", "Unknown"})
		gt.Equal(t, d.BugTypeMatrix.Cell("Unknown", model.SeverityMinor), 1)
		gt.Equal(t, d.BugTypeMatrix.GrandTotal, 3)
	})

	t.Run("developer matrix", func(t *testing.T) {
		gt.Equal(t, d.DeveloperMatrix.Labels(), []string{"Ann", "Bob"})
		gt.Equal(t, d.DeveloperMatrix.RowTotals(), map[string]int{"Ann": 2, "Bob": 1})
		gt.Equal(t, d.FoundDates, []string{"2024-03-05", "2024-03-06"})
	})

	t.Run("trend", func(t *testing.T) {
		gt.Equal(t, len(d.Trend), 2)
		gt.Equal(t, d.Trend[0].Date.Key(), "2024-03-05")
		gt.Equal(t, d.Trend[0].Count, 2)
		gt.Equal(t, d.Trend[1].Date.Key(), "2024-03-06")
		gt.Equal(t, d.Trend[1].Count, 1)
	})

	t.Run("resolution", func(t *testing.T) {
		gt.Equal(t, d.Resolution.FixedCount, 1)
		gt.Equal(t, d.Resolution.Share(model.SeverityNormal), 1.0)
		gt.Equal(t, d.Resolution.ResolvedRatio, 0.2)
	})

	t.Run("developer matrix for one day", func(t *testing.T) {
		m := engine.DeveloperMatrixForDay(issues, "2024-03-05")
		gt.Equal(t, m.Labels(), []string{"Ann"})
		gt.Equal(t, m.GrandTotal, 2)

		all := engine.DeveloperMatrixForDay(issues, engine.AllDays)
		gt.Equal(t, all, d.DeveloperMatrix)
		gt.Equal(t, engine.DeveloperMatrixForDay(issues, ""), d.DeveloperMatrix)

		none := engine.DeveloperMatrixForDay(issues, "2023-01-01")
		gt.Equal(t, len(none.Rows), 0)
		gt.Equal(t, none.GrandTotal, 0)
	})

	t.Run("aggregation is idempotent", func(t *testing.T) {
		gt.Equal(t, engine.Aggregate(issues), d)
	})
}
