package usecase_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Amey2003/excel-issue-tracker/pkg/domain/interfaces/mocks"
	"github.com/Amey2003/excel-issue-tracker/pkg/domain/model"
	"github.com/Amey2003/excel-issue-tracker/pkg/repository"
	"github.com/Amey2003/excel-issue-tracker/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

const issuesJSON = `[
	{"bug_type": "UI", "severity": "P0", "state": "Fixed", "assigned_to": "Ann", "bug_found": "01-02-2024"},
	{"Bug Type": "Logic", "Severity": "Blocker", "State": "Assigned", "Assigned To": "Ann", "Bug Found Date": "2024-03-05"},
	{"Bug Type": "UI", "Severity": "Major", "State": "In Dev", "Assigned To": "Bob", "Bug Found Date": 45357},
	{"Bug Type": "UI", "Severity": "Minor", "State": "Reopen", "Assigned To": "Bob", "Bug Found Date": "2024-03-05"}
]`

func staticSource(payload string) *mocks.IssueSourceMock {
	return &mocks.IssueSourceMock{
		NameFunc: func() string { return "test" },
		FetchFunc: func(ctx context.Context) ([]byte, error) {
			return []byte(payload), nil
		},
	}
}

func TestDashboardRefresh(t *testing.T) {
	ctx := context.Background()

	t.Run("builds and stores a snapshot", func(t *testing.T) {
		fetchedAt := time.Date(2026, 1, 20, 9, 0, 0, 0, time.UTC)
		repo := repository.NewMemory()
		uc := usecase.NewDashboard(staticSource(issuesJSON), repo,
			usecase.WithClock(func() time.Time { return fetchedAt }))

		snapshot, err := uc.Refresh(ctx)
		gt.NoError(t, err).Required()
		gt.V(t, snapshot).NotNil()
		gt.True(t, snapshot.ID != "")
		gt.Equal(t, snapshot.Source, "test")
		gt.Equal(t, snapshot.FetchedAt, fetchedAt)
		gt.Equal(t, len(snapshot.Issues), 4)
		gt.Equal(t, snapshot.Dashboard.TotalIssues, 4)
		gt.Equal(t, snapshot.Dashboard.Tiles, model.SeverityCounts{1, 1, 1, 0, 1})
		gt.Equal(t, snapshot.Dashboard.Resolution.FixedCount, 1)

		current, err := uc.Current(ctx)
		gt.NoError(t, err)
		gt.Equal(t, current.ID, snapshot.ID)
	})

	t.Run("keeps the previous snapshot when the source fails", func(t *testing.T) {
		fail := false
		source := &mocks.IssueSourceMock{
			NameFunc: func() string { return "flaky" },
			FetchFunc: func(ctx context.Context) ([]byte, error) {
				if fail {
					return nil, goerr.Wrap(model.ErrAcquisition, "timeout")
				}
				return []byte(issuesJSON), nil
			},
		}
		uc := usecase.NewDashboard(source, repository.NewMemory())

		first, err := uc.Refresh(ctx)
		gt.NoError(t, err).Required()

		fail = true
		_, err = uc.Refresh(ctx)
		gt.True(t, errors.Is(err, model.ErrAcquisition))

		current, err := uc.Current(ctx)
		gt.NoError(t, err)
		gt.Equal(t, current.ID, first.ID)
	})

	t.Run("keeps the previous snapshot on a shape failure", func(t *testing.T) {
		payload := issuesJSON
		source := &mocks.IssueSourceMock{
			NameFunc:  func() string { return "test" },
			FetchFunc: func(ctx context.Context) ([]byte, error) { return []byte(payload), nil },
		}
		repo := repository.NewMemory()
		uc := usecase.NewDashboard(source, repo)

		first, err := uc.Refresh(ctx)
		gt.NoError(t, err).Required()

		payload = `{"issues": []}`
		_, err = uc.Refresh(ctx)
		gt.True(t, errors.Is(err, model.ErrInvalidShape))

		current, err := uc.Current(ctx)
		gt.NoError(t, err)
		gt.Equal(t, current.ID, first.ID)
		gt.Equal(t, current.Dashboard.TotalIssues, 4)
	})

	t.Run("storage failure is reported", func(t *testing.T) {
		repo := &mocks.SnapshotRepositoryMock{
			PutSnapshotFunc: func(ctx context.Context, snapshot *model.Snapshot) error {
				return goerr.New("disk full")
			},
		}
		_, err := usecase.NewDashboard(staticSource(issuesJSON), repo).Refresh(ctx)
		gt.Error(t, err)
		gt.Equal(t, len(repo.PutSnapshotCalls()), 1)
	})

	t.Run("no source configured", func(t *testing.T) {
		_, err := usecase.NewDashboard(nil, repository.NewMemory()).Refresh(ctx)
		gt.True(t, errors.Is(err, model.ErrSourceNotConfigured))
	})

	t.Run("custom aliases", func(t *testing.T) {
		aliases := (&model.FieldAliases{State: []string{"Workflow"}}).WithDefaults()
		uc := usecase.NewDashboard(staticSource(`[{"Workflow": "RFT"}]`), repository.NewMemory(),
			usecase.WithAliases(aliases))

		snapshot, err := uc.Refresh(ctx)
		gt.NoError(t, err).Required()
		gt.Equal(t, snapshot.Issues[0].State, "RFT")
		gt.Equal(t, snapshot.Dashboard.StateMatrix.GrandTotal, 1)
	})
}

func TestDashboardRefreshNotifies(t *testing.T) {
	notified := make(chan *model.Snapshot, 1)
	notifier := &mocks.NotifierMock{
		NotifyFunc: func(ctx context.Context, snapshot *model.Snapshot) error {
			notified <- snapshot
			return nil
		},
	}
	uc := usecase.NewDashboard(staticSource(issuesJSON), repository.NewMemory(),
		usecase.WithNotifier(notifier))

	snapshot, err := uc.Refresh(context.Background())
	gt.NoError(t, err).Required()

	select {
	case got := <-notified:
		gt.Equal(t, got.ID, snapshot.ID)
	case <-time.After(time.Second):
		t.Fatal("notifier was not called")
	}
}

func TestDashboardRefreshNotifierFailureDoesNotFailRefresh(t *testing.T) {
	done := make(chan struct{})
	notifier := &mocks.NotifierMock{
		NotifyFunc: func(ctx context.Context, snapshot *model.Snapshot) error {
			defer close(done)
			return goerr.New("slack is down")
		},
	}
	uc := usecase.NewDashboard(staticSource(issuesJSON), repository.NewMemory(),
		usecase.WithNotifier(notifier))

	_, err := uc.Refresh(context.Background())
	gt.NoError(t, err)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("notifier was not called")
	}
}

func TestDashboardRefreshSingleFlight(t *testing.T) {
	var fetches atomic.Int32
	release := make(chan struct{})
	entered := make(chan struct{}, 1)
	source := &mocks.IssueSourceMock{
		NameFunc: func() string { return "slow" },
		FetchFunc: func(ctx context.Context) ([]byte, error) {
			fetches.Add(1)
			entered <- struct{}{}
			<-release
			return []byte(issuesJSON), nil
		},
	}
	uc := usecase.NewDashboard(source, repository.NewMemory())

	const callers = 5
	results := make([]*model.Snapshot, callers)
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		s, err := uc.Refresh(context.Background())
		gt.NoError(t, err)
		results[0] = s
	}()
	<-entered

	for i := 1; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s, err := uc.Refresh(context.Background())
			gt.NoError(t, err)
			results[i] = s
		}(i)
	}

	// give the other callers time to join the in-flight refresh
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	gt.Equal(t, fetches.Load(), int32(1))
	for _, s := range results {
		gt.Equal(t, s.ID, results[0].ID)
	}
}

func TestDashboardRefreshOutlivesCancelledCaller(t *testing.T) {
	release := make(chan struct{})
	entered := make(chan struct{}, 1)
	source := &mocks.IssueSourceMock{
		NameFunc: func() string { return "slow" },
		FetchFunc: func(ctx context.Context) ([]byte, error) {
			entered <- struct{}{}
			select {
			case <-release:
			case <-ctx.Done():
				return nil, goerr.Wrap(model.ErrAcquisition, ctx.Err().Error())
			}
			return []byte(issuesJSON), nil
		},
	}
	repo := repository.NewMemory()
	uc := usecase.NewDashboard(source, repo)

	reqCtx, cancel := context.WithCancel(context.Background())
	starterErr := make(chan error, 1)
	go func() {
		_, err := uc.Refresh(reqCtx)
		starterErr <- err
	}()
	<-entered

	type result struct {
		snapshot *model.Snapshot
		err      error
	}
	joined := make(chan result, 1)
	go func() {
		s, err := uc.Refresh(context.Background())
		joined <- result{s, err}
	}()

	// let the second caller join before the first one goes away
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-starterErr:
		gt.True(t, errors.Is(err, context.Canceled))
	case <-time.After(time.Second):
		t.Fatal("cancelled caller did not return")
	}

	close(release)

	select {
	case r := <-joined:
		gt.NoError(t, r.err).Required()
		gt.Equal(t, r.snapshot.Dashboard.TotalIssues, 4)
		current, err := uc.Current(context.Background())
		gt.NoError(t, err).Required()
		gt.Equal(t, current.ID, r.snapshot.ID)
	case <-time.After(time.Second):
		t.Fatal("joined caller did not receive the refresh result")
	}

	gt.Equal(t, len(source.FetchCalls()), 1)
}

func TestDashboardCurrentBeforeRefresh(t *testing.T) {
	uc := usecase.NewDashboard(staticSource(issuesJSON), repository.NewMemory())
	_, err := uc.Current(context.Background())
	gt.True(t, errors.Is(err, model.ErrSnapshotNotFound))
}

func TestDashboardDeveloperMatrix(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewDashboard(staticSource(issuesJSON), repository.NewMemory())

	t.Run("before any refresh", func(t *testing.T) {
		_, err := uc.DeveloperMatrix(ctx, "")
		gt.True(t, errors.Is(err, model.ErrSnapshotNotFound))
	})

	snapshot, err := uc.Refresh(ctx)
	gt.NoError(t, err).Required()

	t.Run("all days", func(t *testing.T) {
		for _, key := range []string{"", "all"} {
			m, err := uc.DeveloperMatrix(ctx, key)
			gt.NoError(t, err).Required()
			gt.Equal(t, m, snapshot.Dashboard.DeveloperMatrix)
			gt.Equal(t, m.Labels(), []string{"Ann", "Bob"})
			gt.Equal(t, m.GrandTotal, 3)
		}
	})

	t.Run("one day", func(t *testing.T) {
		m, err := uc.DeveloperMatrix(ctx, "2024-03-05")
		gt.NoError(t, err).Required()
		gt.Equal(t, m.Labels(), []string{"Ann", "Bob"})
		gt.Equal(t, m.Cell("Ann", model.SeverityBlocker), 1)
		gt.Equal(t, m.Cell("Bob", model.SeverityMinor), 1)
		gt.Equal(t, m.GrandTotal, 2)

		m, err = uc.DeveloperMatrix(ctx, "2024-03-06")
		gt.NoError(t, err).Required()
		gt.Equal(t, m.Labels(), []string{"Bob"})
	})

	t.Run("day without issues", func(t *testing.T) {
		m, err := uc.DeveloperMatrix(ctx, "2023-12-31")
		gt.NoError(t, err).Required()
		gt.Equal(t, len(m.Rows), 0)
		gt.Equal(t, m.GrandTotal, 0)
	})

	t.Run("invalid day key", func(t *testing.T) {
		for _, key := range []string{"05-03-2024", "2024-3-5", "yesterday"} {
			_, err := uc.DeveloperMatrix(ctx, key)
			gt.True(t, errors.Is(err, model.ErrInvalidDayKey))
		}
	})

	t.Run("does not change the snapshot", func(t *testing.T) {
		current, err := uc.Current(ctx)
		gt.NoError(t, err)
		gt.Equal(t, current.Dashboard.DeveloperMatrix.GrandTotal, 3)
	})
}
