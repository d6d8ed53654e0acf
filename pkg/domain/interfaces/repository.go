package interfaces

import (
	"context"

	"github.com/Amey2003/excel-issue-tracker/pkg/domain/model"
)

// SnapshotRepository holds the current snapshot. A put replaces the previous
// snapshot wholesale; readers never observe a partially built one.
type SnapshotRepository interface {
	// PutSnapshot replaces the current snapshot
	PutSnapshot(ctx context.Context, snapshot *model.Snapshot) error

	// GetSnapshot returns the current snapshot or model.ErrSnapshotNotFound
	GetSnapshot(ctx context.Context) (*model.Snapshot, error)

	// Close releases the repository
	Close() error
}
