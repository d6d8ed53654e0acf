package repository

import (
	"context"
	"sync"

	"github.com/Amey2003/excel-issue-tracker/pkg/domain/interfaces"
	"github.com/Amey2003/excel-issue-tracker/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

// Memory implements SnapshotRepository with a single in-process slot
type Memory struct {
	mu      sync.RWMutex
	current *model.Snapshot
	closed  bool
}

// NewMemory creates a new memory repository
func NewMemory() interfaces.SnapshotRepository {
	return &Memory{}
}

// PutSnapshot replaces the current snapshot
func (m *Memory) PutSnapshot(ctx context.Context, snapshot *model.Snapshot) error {
	if snapshot == nil {
		return goerr.New("snapshot is nil")
	}
	if snapshot.ID == "" {
		return goerr.New("snapshot ID is empty")
	}
	if snapshot.Dashboard == nil {
		return goerr.New("snapshot has no dashboard", goerr.V("id", snapshot.ID))
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return goerr.New("repository is closed")
	}
	m.current = snapshot
	return nil
}

// GetSnapshot returns the current snapshot
func (m *Memory) GetSnapshot(ctx context.Context) (*model.Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.current == nil {
		return nil, goerr.Wrap(model.ErrSnapshotNotFound, "no snapshot stored")
	}
	return m.current, nil
}

// Close drops the current snapshot and rejects further puts
func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	m.current = nil
	return nil
}
