package model

import (
	"time"

	"github.com/Amey2003/excel-issue-tracker/pkg/domain/types"
)

// PivotRow is one row of a pivot matrix
type PivotRow struct {
	Label  string         `json:"label"`
	Counts SeverityCounts `json:"counts"`
	Total  int            `json:"total"`
}

// PivotMatrix counts issues by a row category and severity
type PivotMatrix struct {
	Dimension  types.Dimension `json:"dimension"`
	Rows       []PivotRow      `json:"rows"`
	ColTotals  SeverityCounts  `json:"colTotals"`
	GrandTotal int             `json:"grandTotal"`
	// Excluded is the number of input issues whose row value was not a
	// declared row. They are not part of any total.
	Excluded int `json:"excluded"`
}

// Row returns the row with the given label
func (m *PivotMatrix) Row(label string) (PivotRow, bool) {
	for _, r := range m.Rows {
		if r.Label == label {
			return r, true
		}
	}
	return PivotRow{}, false
}

// Cell returns the count at (label, level), 0 for an undeclared row
func (m *PivotMatrix) Cell(label string, level SeverityLevel) int {
	r, ok := m.Row(label)
	if !ok {
		return 0
	}
	return r.Counts.Get(level)
}

// RowTotals returns label -> row total
func (m *PivotMatrix) RowTotals() map[string]int {
	totals := make(map[string]int, len(m.Rows))
	for _, r := range m.Rows {
		totals[r.Label] = r.Total
	}
	return totals
}

// Labels returns the row labels in declared order
func (m *PivotMatrix) Labels() []string {
	labels := make([]string, len(m.Rows))
	for i, r := range m.Rows {
		labels[i] = r.Label
	}
	return labels
}

// TrendPoint is the number of issues found on one day
type TrendPoint struct {
	Date  CanonicalDate `json:"date"`
	Count int           `json:"count"`
}

// TrendSeries is sorted ascending by date and sparse (no zero days)
type TrendSeries []TrendPoint

// ResolutionSummary counts resolved issues by severity
type ResolutionSummary struct {
	FixedCount int            `json:"fixedCount"`
	BySeverity SeverityCounts `json:"bySeverity"`
	// ResolvedRatio is FixedCount over all issues of the snapshot
	ResolvedRatio float64 `json:"resolvedRatio"`
}

// Share returns the proportion of resolved issues with the given level
func (r ResolutionSummary) Share(level SeverityLevel) float64 {
	if r.FixedCount == 0 {
		return 0
	}
	return float64(r.BySeverity.Get(level)) / float64(r.FixedCount)
}

// Dashboard is the full set of aggregates derived from one snapshot
type Dashboard struct {
	TotalIssues     int               `json:"totalIssues"`
	Tiles           SeverityCounts    `json:"tiles"`
	StateMatrix     *PivotMatrix      `json:"stateMatrix"`
	BugTypeMatrix   *PivotMatrix      `json:"bugTypeMatrix"`
	DeveloperMatrix *PivotMatrix      `json:"developerMatrix"`
	Trend           TrendSeries       `json:"trend"`
	Resolution      ResolutionSummary `json:"resolution"`
	// FoundDates are the distinct sorted day keys offered by the developer
	// matrix date filter
	FoundDates []string `json:"foundDates"`
}

// Snapshot is one refresh worth of normalized issues and their aggregates.
// It is replaced wholesale on every successful refresh.
type Snapshot struct {
	ID        types.SnapshotID  `json:"id"`
	Source    string            `json:"source"`
	FetchedAt time.Time         `json:"fetchedAt"`
	Issues    []NormalizedIssue `json:"issues"`
	Dashboard *Dashboard        `json:"dashboard"`
}
