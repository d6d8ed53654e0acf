package config

import (
	"log/slog"

	"github.com/Amey2003/excel-issue-tracker/pkg/domain/interfaces"
	slackSvc "github.com/Amey2003/excel-issue-tracker/pkg/service/slack"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Slack holds the refresh notification configuration
type Slack struct {
	OAuthToken string
	ChannelID  string
}

// Flags returns CLI flags for Slack configuration
func (s *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-oauth-token",
			Usage:       "Slack bot token used to post refresh summaries",
			Category:    "Slack",
			Sources:     cli.EnvVars("ISSUEDASH_SLACK_OAUTH_TOKEN"),
			Destination: &s.OAuthToken,
		},
		&cli.StringFlag{
			Name:        "slack-channel-id",
			Usage:       "Channel that receives refresh summaries",
			Category:    "Slack",
			Sources:     cli.EnvVars("ISSUEDASH_SLACK_CHANNEL_ID"),
			Destination: &s.ChannelID,
		},
	}
}

// IsConfigured checks if both token and channel are set
func (s *Slack) IsConfigured() bool {
	return s.OAuthToken != "" && s.ChannelID != ""
}

// ConfigureOptional creates a notifier if configured, returns nil if not.
// Setting only one of token and channel is an error.
func (s *Slack) ConfigureOptional(logger *slog.Logger) (interfaces.Notifier, error) {
	if s.OAuthToken == "" && s.ChannelID == "" {
		logger.Info("Slack not configured - refresh notifications disabled")
		return nil, nil
	}
	if !s.IsConfigured() {
		return nil, goerr.New("both --slack-oauth-token and --slack-channel-id are required",
			goerr.V("has_oauth_token", s.OAuthToken != ""),
			goerr.V("channel_id", s.ChannelID))
	}

	logger.Info("Configuring Slack notifier", "channel_id", s.ChannelID)
	return slackSvc.New(s.OAuthToken, s.ChannelID), nil
}

// LogValue returns structured log value
func (s Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_oauth_token", s.OAuthToken != ""),
		slog.String("channel_id", s.ChannelID),
	)
}
