package interfaces

//go:generate moq -out mocks/mocks.go -pkg mocks . IssueSource SnapshotRepository Notifier SlackClient Dashboard

import (
	"context"
)

// IssueSource acquires the raw JSON payload of issue records from the
// ingestion collaborator
type IssueSource interface {
	// Name identifies the source in logs and snapshots
	Name() string

	// Fetch returns the JSON payload. Failures are wrapped with
	// model.ErrAcquisition.
	Fetch(ctx context.Context) ([]byte, error)
}
