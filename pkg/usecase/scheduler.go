package usecase

import (
	"context"
	"time"

	"github.com/Amey2003/excel-issue-tracker/pkg/domain/interfaces"
	"github.com/Amey2003/excel-issue-tracker/pkg/utils/apperr"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/robfig/cron/v3"
)

// Scheduler refreshes the dashboard at a fixed interval
type Scheduler struct {
	dashboard interfaces.Dashboard
	interval  time.Duration
	cron      *cron.Cron
}

// NewScheduler creates a Scheduler. An interval of 0 disables periodic
// refresh; Start then only runs the initial refresh.
func NewScheduler(dashboard interfaces.Dashboard, interval time.Duration) *Scheduler {
	return &Scheduler{
		dashboard: dashboard,
		interval:  interval,
		cron:      cron.New(),
	}
}

// Start runs the initial refresh and schedules the following ones. A failed
// initial refresh is logged and does not prevent scheduling.
func (s *Scheduler) Start(ctx context.Context) error {
	if s.interval < 0 {
		return goerr.New("refresh interval must not be negative", goerr.V("interval", s.interval))
	}

	logger := ctxlog.From(ctx)
	s.run(ctx)

	if s.interval == 0 {
		logger.Info("Periodic refresh disabled")
		return nil
	}

	s.cron.Schedule(cron.Every(s.interval), cron.FuncJob(func() {
		s.run(ctx)
	}))
	s.cron.Start()
	logger.Info("Periodic refresh scheduled", "interval", s.interval)
	return nil
}

// Stop stops scheduling and returns a context that is done once a running
// refresh has finished
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

func (s *Scheduler) run(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	if _, err := s.dashboard.Refresh(ctx); err != nil {
		apperr.Handle(ctx, goerr.Wrap(err, "scheduled refresh failed"))
	}
}
