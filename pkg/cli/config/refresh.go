package config

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Refresh holds the periodic refresh configuration
type Refresh struct {
	Interval time.Duration
}

// Flags returns CLI flags for Refresh configuration
func (r *Refresh) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.DurationFlag{
			Name:        "refresh-interval",
			Usage:       "Interval between automatic refreshes, 0 disables them",
			Category:    "Refresh",
			Value:       60 * time.Second,
			Sources:     cli.EnvVars("ISSUEDASH_REFRESH_INTERVAL"),
			Destination: &r.Interval,
		},
	}
}

// Validate validates the refresh configuration
func (r *Refresh) Validate() error {
	if r.Interval < 0 {
		return goerr.New("refresh interval must not be negative", goerr.V("interval", r.Interval))
	}
	if r.Interval > 0 && r.Interval < time.Second {
		return goerr.New("refresh interval must be at least one second", goerr.V("interval", r.Interval))
	}
	return nil
}

// LogValue returns structured log value
func (r Refresh) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Duration("interval", r.Interval),
	)
}
