package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	rowsLoaded   prometheus.Counter
	rowsDropped  prometheus.Counter
	stations     prometheus.Gauge
	errorsTotal  *prometheus.CounterVec
	bucketizeOps *prometheus.CounterVec
	latency      *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		rowsLoaded: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "stationpulse_rows_loaded_total",
				Help: "Total number of snapshot rows loaded from datasets",
			},
		),
		rowsDropped: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "stationpulse_rows_dropped_total",
				Help: "Total number of malformed snapshot rows dropped during load",
			},
		),
		stations: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "stationpulse_stations",
				Help: "Number of distinct stations in the current dataset",
			},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stationpulse_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		bucketizeOps: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stationpulse_bucketize_total",
				Help: "Quartile bucketing computations by metric column",
			},
			[]string{"metric"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "stationpulse_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordDatasetLoad records the outcome of a dataset load.
func (r *Recorder) RecordDatasetLoad(rows, dropped, stations int) {
	r.rowsLoaded.Add(float64(rows))
	r.rowsDropped.Add(float64(dropped))
	r.stations.Set(float64(stations))
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordBucketize records a bucketing computation for a metric column.
func (r *Recorder) RecordBucketize(metric string) {
	r.bucketizeOps.WithLabelValues(metric).Inc()
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
