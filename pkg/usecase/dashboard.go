package usecase

import (
	"context"
	"time"

	"github.com/Amey2003/excel-issue-tracker/pkg/domain/interfaces"
	"github.com/Amey2003/excel-issue-tracker/pkg/domain/model"
	"github.com/Amey2003/excel-issue-tracker/pkg/domain/types"
	"github.com/Amey2003/excel-issue-tracker/pkg/engine"
	"github.com/Amey2003/excel-issue-tracker/pkg/utils/async"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/singleflight"
)

const refreshKey = "refresh"

// DashboardUseCase owns the current snapshot and its lifecycle
type DashboardUseCase struct {
	source     interfaces.IssueSource
	repo       interfaces.SnapshotRepository
	notifier   interfaces.Notifier
	normalizer *engine.Normalizer
	now        func() time.Time
	group      singleflight.Group
}

var _ interfaces.Dashboard = (*DashboardUseCase)(nil)

// Option configures a DashboardUseCase
type Option func(*DashboardUseCase)

// WithNotifier announces every successful refresh
func WithNotifier(notifier interfaces.Notifier) Option {
	return func(u *DashboardUseCase) { u.notifier = notifier }
}

// WithAliases replaces the default field aliases
func WithAliases(aliases *model.FieldAliases) Option {
	return func(u *DashboardUseCase) { u.normalizer = engine.NewNormalizer(aliases) }
}

// WithClock replaces time.Now for FetchedAt
func WithClock(now func() time.Time) Option {
	return func(u *DashboardUseCase) { u.now = now }
}

// NewDashboard creates a new DashboardUseCase
func NewDashboard(source interfaces.IssueSource, repo interfaces.SnapshotRepository, opts ...Option) *DashboardUseCase {
	u := &DashboardUseCase{
		source:     source,
		repo:       repo,
		normalizer: engine.NewNormalizer(nil),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Refresh rebuilds the snapshot from the source. Concurrent calls share one
// in-flight refresh and all receive its result. The shared refresh does not
// stop when the caller that started it goes away; each caller only stops
// waiting when its own ctx is done.
func (u *DashboardUseCase) Refresh(ctx context.Context) (*model.Snapshot, error) {
	shared := context.WithoutCancel(ctx)
	ch := u.group.DoChan(refreshKey, func() (any, error) {
		return u.refresh(shared)
	})

	select {
	case <-ctx.Done():
		return nil, goerr.Wrap(ctx.Err(), "stopped waiting for refresh")
	case res := <-ch:
		if res.Shared {
			ctxlog.From(ctx).Debug("Joined in-flight refresh")
		}
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*model.Snapshot), nil
	}
}

func (u *DashboardUseCase) refresh(ctx context.Context) (*model.Snapshot, error) {
	if u.source == nil {
		return nil, goerr.Wrap(model.ErrSourceNotConfigured, "cannot refresh")
	}

	logger := ctxlog.From(ctx)
	start := time.Now()

	data, err := u.source.Fetch(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch issues", goerr.V("source", u.source.Name()))
	}

	records, err := engine.DecodeRecords(data)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to decode issues", goerr.V("source", u.source.Name()))
	}

	issues := u.normalizer.NormalizeAll(records)

	id, err := types.NewSnapshotID()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create snapshot ID")
	}
	snapshot := &model.Snapshot{
		ID:        id,
		Source:    u.source.Name(),
		FetchedAt: u.now(),
		Issues:    issues,
		Dashboard: engine.Aggregate(issues),
	}

	if err := u.repo.PutSnapshot(ctx, snapshot); err != nil {
		return nil, goerr.Wrap(err, "failed to store snapshot", goerr.V("snapshotID", id))
	}

	logger.Info("Dashboard refreshed",
		"snapshotID", id,
		"source", snapshot.Source,
		"issues", len(issues),
		"resolved", snapshot.Dashboard.Resolution.FixedCount,
		"duration", time.Since(start),
	)

	if u.notifier != nil {
		notifier := u.notifier
		async.Dispatch(ctx, func(ctx context.Context) error {
			return notifier.Notify(ctx, snapshot)
		})
	}

	return snapshot, nil
}

// Current returns the current snapshot
func (u *DashboardUseCase) Current(ctx context.Context) (*model.Snapshot, error) {
	snapshot, err := u.repo.GetSnapshot(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get current snapshot")
	}
	return snapshot, nil
}

// DeveloperMatrix returns the developer matrix of the current snapshot
// restricted to issues found on dayKey. "" or "all" returns the unfiltered
// matrix.
func (u *DashboardUseCase) DeveloperMatrix(ctx context.Context, dayKey string) (*model.PivotMatrix, error) {
	var day model.CanonicalDate
	filtered := dayKey != "" && dayKey != engine.AllDays
	if filtered {
		d, err := model.ParseDayKey(dayKey)
		if err != nil {
			return nil, err
		}
		day = d
	}

	snapshot, err := u.Current(ctx)
	if err != nil {
		return nil, err
	}

	if !filtered {
		return snapshot.Dashboard.DeveloperMatrix, nil
	}
	return engine.DeveloperMatrixForDay(snapshot.Issues, day.Key()), nil
}
