package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"StationPulse/internal/domain/models"
	domrepo "StationPulse/internal/domain/repository"
	domsvc "StationPulse/internal/domain/service"
	"StationPulse/internal/services/analytics"
	"StationPulse/pkg/cache"
	applogger "StationPulse/pkg/logger"
)

const defaultCacheTTL = 5 * time.Minute

// Dashboard is the application facade over the analytics services. The
// dataset is loaded once on first use and the derived tables are kept in
// memory; per-metric bucketings are additionally cached under the dataset
// identity hash so a changed file never serves stale partitions.
type Dashboard struct {
	source     domrepo.SnapshotSource
	aggregator domsvc.Aggregator
	bucketizer domsvc.Bucketizer
	classifier domsvc.MapClassifier
	summarizer domsvc.Summarizer

	cache    cache.Service
	cacheTTL time.Duration
	metrics  domrepo.Metrics
	logger   *applogger.Logger

	mu      sync.Mutex
	dataset *models.Dataset
	stats   []models.StationStats
	hourly  []models.HourlyAggregate
}

type DashboardOption func(*Dashboard)

// WithCacheTTL overrides the derived-result cache lifetime.
func WithCacheTTL(ttl time.Duration) DashboardOption {
	return func(d *Dashboard) {
		if ttl > 0 {
			d.cacheTTL = ttl
		}
	}
}

func NewDashboard(
	source domrepo.SnapshotSource,
	aggregator domsvc.Aggregator,
	bucketizer domsvc.Bucketizer,
	classifier domsvc.MapClassifier,
	summarizer domsvc.Summarizer,
	cacheSvc cache.Service,
	metrics domrepo.Metrics,
	logger *applogger.Logger,
	opts ...DashboardOption,
) *Dashboard {
	d := &Dashboard{
		source:     source,
		aggregator: aggregator,
		bucketizer: bucketizer,
		classifier: classifier,
		summarizer: summarizer,
		cache:      cacheSvc,
		cacheTTL:   defaultCacheTTL,
		metrics:    metrics,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Preload forces the dataset load. Called at startup so a bad dataset path
// fails the process instead of the first request.
func (d *Dashboard) Preload(ctx context.Context) error {
	_, err := d.ensureLoaded(ctx)
	return err
}

// ensureLoaded loads and aggregates the dataset exactly once.
func (d *Dashboard) ensureLoaded(ctx context.Context) (*models.Dataset, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.dataset != nil {
		return d.dataset, nil
	}

	started := time.Now()
	ds, err := d.source.Load(ctx)
	if err != nil {
		return nil, err
	}

	d.stats, d.hourly = d.aggregator.Aggregate(ds.Snapshots)
	d.dataset = ds

	if d.metrics != nil {
		d.metrics.RecordLatency("dataset_load", time.Since(started).Seconds())
	}
	if d.logger != nil {
		d.logger.Info("derived tables ready",
			applogger.Int("stations", len(d.stats)),
			applogger.Int("hours", len(d.hourly)),
			applogger.String("dataset", shortHash(ds.Report.Hash)),
		)
	}
	return ds, nil
}

func shortHash(h string) string {
	if len(h) > 12 {
		return h[:12]
	}
	return h
}

// Stations returns the per-station statistics table.
func (d *Dashboard) Stations(ctx context.Context) ([]models.StationStats, error) {
	if _, err := d.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	return d.stats, nil
}

// Hourly returns the dataset-wide hourly availability trend.
func (d *Dashboard) Hourly(ctx context.Context) ([]models.HourlyAggregate, error) {
	if _, err := d.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	return d.hourly, nil
}

// Buckets partitions stations into quartile groups on a metric column and
// returns the stations belonging to the selected groups (all groups when the
// selection is empty). The bucketing itself is cached per dataset and metric.
func (d *Dashboard) Buckets(ctx context.Context, metric string, groups []string) (models.Bucketing, []models.StationStats, error) {
	ds, err := d.ensureLoaded(ctx)
	if err != nil {
		return models.Bucketing{}, nil, err
	}

	bucketing, err := d.bucketing(ctx, ds.Report.Hash, metric)
	if err != nil {
		return models.Bucketing{}, nil, err
	}

	if d.metrics != nil {
		d.metrics.RecordBucketize(metric)
	}
	return bucketing, analytics.FilterByGroups(d.stats, bucketing, groups), nil
}

func (d *Dashboard) bucketing(ctx context.Context, datasetHash, metric string) (models.Bucketing, error) {
	key := fmt.Sprintf("buckets:%s:%s", datasetHash, metric)

	if d.cache != nil {
		cached, ok, err := cache.GetTyped[models.Bucketing](ctx, d.cache, key)
		if err != nil && d.logger != nil {
			d.logger.Warn("bucketing cache read failed", applogger.Error(err))
		}
		if ok {
			return cached, nil
		}
	}

	bucketing, err := d.bucketizer.Bucketize(d.stats, metric)
	if err != nil {
		return models.Bucketing{}, err
	}

	if d.cache != nil {
		if err := cache.SetTyped(ctx, d.cache, key, bucketing, d.cacheTTL); err != nil && d.logger != nil {
			d.logger.Warn("bucketing cache write failed", applogger.Error(err))
		}
	}
	return bucketing, nil
}

// Map returns the colored marker set for a map metric, keeping only
// stations whose metric value is at least min.
func (d *Dashboard) Map(ctx context.Context, metric string, min float64) (models.MapView, error) {
	if _, err := d.ensureLoaded(ctx); err != nil {
		return models.MapView{}, err
	}

	started := time.Now()
	view, err := d.classifier.Classify(d.stats, metric, min)
	if err != nil {
		return models.MapView{}, err
	}
	if d.metrics != nil {
		d.metrics.RecordLatency("map_classify", time.Since(started).Seconds())
	}
	return view, nil
}

// Summary returns the side panels for the selected metric.
func (d *Dashboard) Summary(ctx context.Context, metric string) (models.Summary, error) {
	ds, err := d.ensureLoaded(ctx)
	if err != nil {
		return models.Summary{}, err
	}
	return d.summarizer.Summarize(d.stats, ds.Snapshots, metric)
}

// ExportCSV renders the statistics table as a CSV download.
func (d *Dashboard) ExportCSV(ctx context.Context) ([]byte, error) {
	if _, err := d.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	return ExportCSV(d.stats)
}

// Report returns the load report of the active dataset.
func (d *Dashboard) Report(ctx context.Context) (models.LoadReport, error) {
	ds, err := d.ensureLoaded(ctx)
	if err != nil {
		return models.LoadReport{}, err
	}
	return ds.Report, nil
}
