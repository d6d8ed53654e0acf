package engine

import (
	"sort"
	"strings"

	"github.com/Amey2003/excel-issue-tracker/pkg/domain/model"
	"github.com/Amey2003/excel-issue-tracker/pkg/domain/types"
)

// ConventionalStateOrder is the lifecycle order state matrix rows follow
var ConventionalStateOrder = []string{"Assigned", "In Dev", "RFT", "Fixed", "Reopen"}

// rowValue selects the field of issue that supplies the row for dim
func rowValue(issue model.NormalizedIssue, dim types.Dimension) (string, bool) {
	switch dim {
	case types.DimensionState:
		return issue.State, true
	case types.DimensionBugType:
		return issue.Type, true
	case types.DimensionAssignee:
		return issue.Assignee, true
	default:
		return "", false
	}
}

// BuildPivot counts issues by declared row and severity. For the state
// dimension a row value matches a declared label ignoring case; for other
// dimensions it must be identical. Issues whose row is not declared are
// counted in Excluded only.
func BuildPivot(issues []model.NormalizedIssue, rows []string, dim types.Dimension) *model.PivotMatrix {
	m := &model.PivotMatrix{
		Dimension: dim,
		Rows:      make([]model.PivotRow, 0, len(rows)),
	}

	index := make(map[string]int, len(rows))
	folded := make(map[string]int, len(rows))
	for _, label := range rows {
		if _, dup := index[label]; dup {
			continue
		}
		index[label] = len(m.Rows)
		if _, ok := folded[strings.ToLower(label)]; !ok {
			folded[strings.ToLower(label)] = len(m.Rows)
		}
		m.Rows = append(m.Rows, model.PivotRow{Label: label})
	}

	for _, issue := range issues {
		value, ok := rowValue(issue, dim)
		if !ok {
			m.Excluded++
			continue
		}

		pos, found := index[value]
		if dim == types.DimensionState {
			pos, found = folded[strings.ToLower(value)]
		}
		if !found {
			m.Excluded++
			continue
		}

		row := &m.Rows[pos]
		row.Counts.Inc(issue.Severity)
		row.Total++
		m.ColTotals.Inc(issue.Severity)
		m.GrandTotal++
	}

	return m
}

// StateRows derives state matrix rows: the conventional lifecycle states
// present in issues (ignoring case), then any other observed states in
// first-observed order
func StateRows(issues []model.NormalizedIssue) []string {
	present := distinctInOrder(issues, func(i model.NormalizedIssue) string { return i.State })

	var rows []string
	for _, conventional := range ConventionalStateOrder {
		for _, state := range present {
			if sameState(state, conventional) {
				rows = append(rows, conventional)
				break
			}
		}
	}

	seen := make(map[string]bool, len(rows))
	for _, r := range rows {
		seen[r] = true
	}
	for _, state := range present {
		if isConventionalState(state) || seen[state] {
			continue
		}
		seen[state] = true
		rows = append(rows, state)
	}
	return rows
}

func sameState(a, b string) bool {
	return strings.ToLower(a) == strings.ToLower(b)
}

func isConventionalState(state string) bool {
	for _, conventional := range ConventionalStateOrder {
		if sameState(state, conventional) {
			return true
		}
	}
	return false
}

// BugTypeRows derives bug type matrix rows: every observed type, sorted
func BugTypeRows(issues []model.NormalizedIssue) []string {
	rows := distinctInOrder(issues, func(i model.NormalizedIssue) string { return i.Type })
	sort.Strings(rows)
	return rows
}

// DeveloperRows derives developer matrix rows: every observed assignee
// except "Unknown", sorted
func DeveloperRows(issues []model.NormalizedIssue) []string {
	var rows []string
	for _, dev := range distinctInOrder(issues, func(i model.NormalizedIssue) string { return i.Assignee }) {
		if dev != model.UnknownValue {
			rows = append(rows, dev)
		}
	}
	sort.Strings(rows)
	return rows
}

func distinctInOrder(issues []model.NormalizedIssue, value func(model.NormalizedIssue) string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, issue := range issues {
		v := value(issue)
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
