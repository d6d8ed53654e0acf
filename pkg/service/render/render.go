package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/Amey2003/excel-issue-tracker/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"github.com/olekukonko/tablewriter"
)

// TrendLabelLayout is how trend days are labelled
const TrendLabelLayout = "02 Jan"

// Dashboard writes every view of d as plain-text tables
func Dashboard(w io.Writer, d *model.Dashboard) error {
	if d == nil {
		return goerr.New("dashboard is nil")
	}

	sections := []struct {
		title string
		write func(io.Writer) error
	}{
		{"Severity", func(w io.Writer) error { return Tiles(w, d.Tiles) }},
		{"Open issues by state", func(w io.Writer) error { return Matrix(w, d.StateMatrix) }},
		{"Open issues by bug type", func(w io.Writer) error { return Matrix(w, d.BugTypeMatrix) }},
		{"Developer workload", func(w io.Writer) error { return Matrix(w, d.DeveloperMatrix) }},
		{"Found per day", func(w io.Writer) error { return Trend(w, d.Trend, d.TotalIssues) }},
		{"Resolved", func(w io.Writer) error { return Resolution(w, d.Resolution) }},
	}

	for i, s := range sections {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return goerr.Wrap(err, "failed to write report")
			}
		}
		if _, err := fmt.Fprintf(w, "## %s\n", s.title); err != nil {
			return goerr.Wrap(err, "failed to write report")
		}
		if err := s.write(w); err != nil {
			return goerr.Wrap(err, "failed to render section", goerr.V("section", s.title))
		}
	}
	return nil
}

func severityHeader(first string) []any {
	header := []any{first}
	for _, level := range model.SeverityLevels {
		header = append(header, level.String())
	}
	return header
}

func countsRow(label string, counts model.SeverityCounts) []string {
	row := []string{label}
	for _, level := range model.SeverityLevels {
		row = append(row, strconv.Itoa(counts.Get(level)))
	}
	return row
}

// Tiles writes one column per severity
func Tiles(w io.Writer, tiles model.SeverityCounts) error {
	table := tablewriter.NewWriter(w)
	table.Header(severityHeader("")...)
	if err := table.Append(countsRow("Issues", tiles)); err != nil {
		return goerr.Wrap(err, "failed to append tiles")
	}
	return table.Render()
}

// Matrix writes a pivot matrix with a Total column and a Total footer row
func Matrix(w io.Writer, m *model.PivotMatrix) error {
	if m == nil || len(m.Rows) == 0 {
		_, err := fmt.Fprintln(w, "(no issues)")
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header(append(severityHeader(m.Dimension.Header()), "Total")...)
	for _, r := range m.Rows {
		if err := table.Append(append(countsRow(r.Label, r.Counts), strconv.Itoa(r.Total))); err != nil {
			return goerr.Wrap(err, "failed to append matrix row", goerr.V("label", r.Label))
		}
	}

	footer := []any{"Total"}
	for _, level := range model.SeverityLevels {
		footer = append(footer, strconv.Itoa(m.ColTotals.Get(level)))
	}
	table.Footer(append(footer, strconv.Itoa(m.GrandTotal))...)
	if err := table.Render(); err != nil {
		return err
	}

	if m.Excluded > 0 {
		if _, err := fmt.Fprintf(w, "%d issue(s) outside the listed rows\n", m.Excluded); err != nil {
			return err
		}
	}
	return nil
}

// Trend writes the found-per-day series. total is the number of issues in
// the snapshot, shown as the scale the counts are read against.
func Trend(w io.Writer, series model.TrendSeries, total int) error {
	if len(series) == 0 {
		_, err := fmt.Fprintln(w, "(no dated issues)")
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header("Day", "Found", "Of total")
	for _, p := range series {
		label := p.Date.Time(nil).Format(TrendLabelLayout)
		if err := table.Append([]string{label, strconv.Itoa(p.Count), strconv.Itoa(total)}); err != nil {
			return goerr.Wrap(err, "failed to append trend point", goerr.V("day", p.Date.Key()))
		}
	}
	return table.Render()
}

// Resolution writes resolved counts and shares per severity
func Resolution(w io.Writer, r model.ResolutionSummary) error {
	table := tablewriter.NewWriter(w)
	table.Header("Severity", "Resolved", "Share")
	for _, level := range model.SeverityLevels {
		row := []string{
			level.String(),
			strconv.Itoa(r.BySeverity.Get(level)),
			fmt.Sprintf("%.1f%%", r.Share(level)*100),
		}
		if err := table.Append(row); err != nil {
			return goerr.Wrap(err, "failed to append resolution row", goerr.V("severity", level.String()))
		}
	}
	table.Footer("Total", strconv.Itoa(r.FixedCount), fmt.Sprintf("%.1f%% of all", r.ResolvedRatio*100))
	return table.Render()
}
