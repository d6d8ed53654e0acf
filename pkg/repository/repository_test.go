package repository_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Amey2003/excel-issue-tracker/pkg/domain/interfaces"
	"github.com/Amey2003/excel-issue-tracker/pkg/domain/model"
	"github.com/Amey2003/excel-issue-tracker/pkg/domain/types"
	"github.com/Amey2003/excel-issue-tracker/pkg/engine"
	"github.com/Amey2003/excel-issue-tracker/pkg/repository"
	"github.com/m-mizutani/gt"
)

func newID() types.SnapshotID {
	id, err := types.NewSnapshotID()
	if err != nil {
		panic(err)
	}
	return id
}

func newSnapshot(states ...string) *model.Snapshot {
	issues := make([]model.NormalizedIssue, len(states))
	for i, state := range states {
		issues[i] = engine.NewNormalizer(nil).Normalize(model.RawRecord{"State": state})
	}
	return &model.Snapshot{
		ID:        newID(),
		Source:    "test",
		FetchedAt: time.Now(),
		Issues:    issues,
		Dashboard: engine.Aggregate(issues),
	}
}

func testRepository(t *testing.T, newRepo func(t *testing.T) interfaces.SnapshotRepository) {
	t.Run("GetSnapshot before any put", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		_, err := repo.GetSnapshot(context.Background())
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrSnapshotNotFound))
	})

	t.Run("PutSnapshot replaces the current snapshot", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()
		ctx := context.Background()

		first := newSnapshot("Assigned")
		gt.NoError(t, repo.PutSnapshot(ctx, first))

		got, err := repo.GetSnapshot(ctx)
		gt.NoError(t, err).Required()
		gt.Equal(t, got.ID, first.ID)

		second := newSnapshot("Fixed", "RFT")
		gt.NoError(t, repo.PutSnapshot(ctx, second))

		got, err = repo.GetSnapshot(ctx)
		gt.NoError(t, err).Required()
		gt.Equal(t, got.ID, second.ID)
		gt.Equal(t, got.Dashboard.TotalIssues, 2)
	})

	t.Run("PutSnapshot rejects incomplete snapshots", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()
		ctx := context.Background()

		gt.Error(t, repo.PutSnapshot(ctx, nil))
		gt.Error(t, repo.PutSnapshot(ctx, &model.Snapshot{Dashboard: &model.Dashboard{}}))
		gt.Error(t, repo.PutSnapshot(ctx, &model.Snapshot{ID: newID()}))

		_, err := repo.GetSnapshot(ctx)
		gt.True(t, errors.Is(err, model.ErrSnapshotNotFound))
	})

	t.Run("Concurrent puts and gets", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()
		ctx := context.Background()

		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(2)
			go func() {
				defer wg.Done()
				gt.NoError(t, repo.PutSnapshot(ctx, newSnapshot("Assigned", "Reopen")))
			}()
			go func() {
				defer wg.Done()
				if s, err := repo.GetSnapshot(ctx); err == nil {
					gt.Equal(t, s.Dashboard.TotalIssues, 2)
				}
			}()
		}
		wg.Wait()

		got, err := repo.GetSnapshot(ctx)
		gt.NoError(t, err)
		gt.Equal(t, got.Dashboard.TotalIssues, 2)
	})
}

func TestMemoryRepository(t *testing.T) {
	testRepository(t, func(t *testing.T) interfaces.SnapshotRepository {
		return repository.NewMemory()
	})
}

func TestMemoryClose(t *testing.T) {
	repo := repository.NewMemory()
	ctx := context.Background()

	gt.NoError(t, repo.PutSnapshot(ctx, newSnapshot("Assigned")))
	gt.NoError(t, repo.Close())

	_, err := repo.GetSnapshot(ctx)
	gt.True(t, errors.Is(err, model.ErrSnapshotNotFound))
	gt.Error(t, repo.PutSnapshot(ctx, newSnapshot("Assigned")))
}
