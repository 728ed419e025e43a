package service

import (
	"StationPulse/internal/domain/models"
)

// Aggregator derives per-station statistics and the hourly availability
// trend from raw snapshots. Pure: identical input yields identical output.
type Aggregator interface {
	Aggregate(snapshots []models.Snapshot) ([]models.StationStats, []models.HourlyAggregate)
}

// Bucketizer partitions stations into four quartile groups on a metric
// column. Every station lands in exactly one group.
type Bucketizer interface {
	Bucketize(stats []models.StationStats, metric string) (models.Bucketing, error)
}

// MapClassifier colors stations by fixed literal thresholds over a map
// metric. Distinct from the Bucketizer: absolute cutoffs, not
// distribution-relative ones.
type MapClassifier interface {
	Classify(stats []models.StationStats, metric string, min float64) (models.MapView, error)
}

// Summarizer builds the dashboard side panels (top stations, overall
// statistics, peak/off-peak hours).
type Summarizer interface {
	Summarize(stats []models.StationStats, snapshots []models.Snapshot, metric string) (models.Summary, error)
}
