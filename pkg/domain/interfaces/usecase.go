package interfaces

import (
	"context"

	"github.com/Amey2003/excel-issue-tracker/pkg/domain/model"
)

// Dashboard is the application service behind the HTTP API and the CLI
type Dashboard interface {
	// Refresh acquires, normalizes and aggregates issues, then replaces the
	// current snapshot. On failure the previous snapshot is kept.
	Refresh(ctx context.Context) (*model.Snapshot, error)

	// Current returns the current snapshot
	Current(ctx context.Context) (*model.Snapshot, error)

	// DeveloperMatrix rebuilds the developer matrix for one found day.
	// "" or "all" selects every day.
	DeveloperMatrix(ctx context.Context, dayKey string) (*model.PivotMatrix, error)
}
