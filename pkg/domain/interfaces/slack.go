package interfaces

import (
	"context"

	"github.com/Amey2003/excel-issue-tracker/pkg/domain/model"
	"github.com/slack-go/slack"
)

// SlackClient is the subset of *slack.Client used for refresh notifications
type SlackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

// Notifier announces a freshly rendered snapshot
type Notifier interface {
	Notify(ctx context.Context, snapshot *model.Snapshot) error
}
