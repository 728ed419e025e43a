package repository

import (
	"context"

	"StationPulse/internal/domain/models"
)

// SnapshotSource loads the snapshot dataset. A failed load is session-fatal;
// malformed rows are dropped and counted in the report instead.
type SnapshotSource interface {
	Load(ctx context.Context) (*models.Dataset, error)
}

// Metrics records operational metrics.
type Metrics interface {
	RecordDatasetLoad(rows, dropped, stations int)
	RecordError(kind string)
	RecordBucketize(metric string)
	RecordLatency(op string, seconds float64)
}
