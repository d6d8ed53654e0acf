package slack

import (
	"fmt"
	"strings"

	"github.com/Amey2003/excel-issue-tracker/pkg/domain/model"
	"github.com/slack-go/slack"
)

// GetSeverityEmoji returns the emoji shown next to a severity tile
func GetSeverityEmoji(level model.SeverityLevel) string {
	switch level {
	case model.SeverityBlocker:
		return "⛔"
	case model.SeverityCritical:
		return "🚨"
	case model.SeverityMajor:
		return "⚠️"
	case model.SeverityNormal:
		return "ℹ️"
	default:
		return "🔹"
	}
}

// BuildSummaryBlocks renders the severity tiles and resolution summary of a
// snapshot as Block Kit blocks
func BuildSummaryBlocks(snapshot *model.Snapshot) []slack.Block {
	d := snapshot.Dashboard

	header := slack.NewHeaderBlock(
		slack.NewTextBlockObject(slack.PlainTextType, "Data refreshed", false, false),
	)

	var tiles []*slack.TextBlockObject
	for _, level := range model.SeverityLevels {
		tiles = append(tiles, slack.NewTextBlockObject(slack.MarkdownType,
			fmt.Sprintf("%s *%s*\n%d", GetSeverityEmoji(level), level, d.Tiles.Get(level)),
			false, false))
	}
	tileSection := slack.NewSectionBlock(nil, tiles, nil)

	var resolved []string
	for _, level := range model.SeverityLevels {
		if n := d.Resolution.BySeverity.Get(level); n > 0 {
			resolved = append(resolved, fmt.Sprintf("%s %d", level, n))
		}
	}
	resolution := fmt.Sprintf("*Resolved:* %d of %d (%.0f%%)",
		d.Resolution.FixedCount, d.TotalIssues, d.Resolution.ResolvedRatio*100)
	if len(resolved) > 0 {
		resolution += " | " + strings.Join(resolved, ", ")
	}
	resolutionSection := slack.NewSectionBlock(
		slack.NewTextBlockObject(slack.MarkdownType, resolution, false, false),
		nil, nil,
	)

	footer := slack.NewContextBlock("",
		slack.NewTextBlockObject(slack.MarkdownType,
			fmt.Sprintf("Source `%s` | Snapshot `%s` | %s",
				snapshot.Source, snapshot.ID, snapshot.FetchedAt.Format("2006-01-02 15:04:05 MST")),
			false, false),
	)

	return []slack.Block{header, tileSection, resolutionSection, footer}
}
