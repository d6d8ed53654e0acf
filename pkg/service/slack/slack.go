package slack

import (
	"context"
	"fmt"

	"github.com/Amey2003/excel-issue-tracker/pkg/domain/interfaces"
	"github.com/Amey2003/excel-issue-tracker/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack"
)

// Notifier posts a refresh summary to a Slack channel
type Notifier struct {
	client    interfaces.SlackClient
	channelID string
}

var _ interfaces.Notifier = (*Notifier)(nil)

// New creates a Notifier using a bot token
func New(token, channelID string, options ...slack.Option) *Notifier {
	return NewWithClient(slack.New(token, options...), channelID)
}

// NewWithClient creates a Notifier on an existing client
func NewWithClient(client interfaces.SlackClient, channelID string) *Notifier {
	return &Notifier{
		client:    client,
		channelID: channelID,
	}
}

// Notify posts the summary of snapshot
func (n *Notifier) Notify(ctx context.Context, snapshot *model.Snapshot) error {
	if snapshot == nil || snapshot.Dashboard == nil {
		return goerr.New("snapshot has no dashboard")
	}

	_, _, err := n.client.PostMessageContext(ctx, n.channelID,
		slack.MsgOptionText(SummaryText(snapshot), false),
		slack.MsgOptionBlocks(BuildSummaryBlocks(snapshot)...),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to post refresh summary to Slack",
			goerr.V("channel", n.channelID),
			goerr.V("snapshot", snapshot.ID))
	}
	return nil
}

// SummaryText is the plain-text fallback of the summary message
func SummaryText(snapshot *model.Snapshot) string {
	d := snapshot.Dashboard
	return fmt.Sprintf("Data refreshed: %d issues, %d resolved", d.TotalIssues, d.Resolution.FixedCount)
}
