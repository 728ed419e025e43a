package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"StationPulse/internal/domain/models"
	"StationPulse/internal/services/analytics"
	"StationPulse/pkg/cache"
)

type fakeSource struct {
	loads int
	ds    *models.Dataset
	err   error
}

func (f *fakeSource) Load(ctx context.Context) (*models.Dataset, error) {
	f.loads++
	if f.err != nil {
		return nil, f.err
	}
	return f.ds, nil
}

func sampleDataset() *models.Dataset {
	mk := func(id, name string, hour, total, rent, ret int) models.Snapshot {
		return models.Snapshot{
			StationID:       id,
			StationName:     name,
			Timestamp:       time.Date(2025, 5, 12, hour, 0, 0, 0, time.UTC),
			Hour:            hour,
			Capacity:        total,
			AvailableRent:   rent,
			AvailableReturn: ret,
		}
	}
	snapshots := []models.Snapshot{
		mk("A", "YouBike2.0_Alpha", 8, 20, 15, 5),
		mk("A", "YouBike2.0_Alpha", 9, 20, 13, 7),
		mk("B", "YouBike2.0_Beta", 8, 10, 2, 8),
		mk("B", "YouBike2.0_Beta", 9, 10, 4, 6),
		mk("C", "YouBike2.0_Gamma", 8, 30, 25, 5),
		mk("D", "YouBike2.0_Delta", 9, 16, 1, 15),
	}
	return &models.Dataset{
		Snapshots: snapshots,
		Report: models.LoadReport{
			Path:     "stations.csv",
			Rows:     len(snapshots),
			Stations: 4,
			Hash:     "6ff4a02b9a3d45c1c6a1de6320ed1bd3c1b2d9c0ffe05a1b2c3d4e5f60718293",
			LoadedAt: time.Now(),
		},
	}
}

func newTestDashboard(src *fakeSource) *Dashboard {
	return NewDashboard(
		src,
		analytics.NewStationAggregator(),
		analytics.NewQuartileBucketizer(),
		analytics.NewThresholdClassifier(),
		analytics.NewPanelSummarizer(),
		cache.NewMemoryCache(),
		nil,
		nil,
	)
}

func TestDashboardLoadsOnce(t *testing.T) {
	src := &fakeSource{ds: sampleDataset()}
	d := newTestDashboard(src)
	ctx := context.Background()

	if _, err := d.Stations(ctx); err != nil {
		t.Fatalf("Stations: %v", err)
	}
	if _, err := d.Hourly(ctx); err != nil {
		t.Fatalf("Hourly: %v", err)
	}
	if _, err := d.Report(ctx); err != nil {
		t.Fatalf("Report: %v", err)
	}

	if src.loads != 1 {
		t.Errorf("dataset loaded %d times, want 1", src.loads)
	}
}

func TestDashboardLoadFailure(t *testing.T) {
	src := &fakeSource{err: errors.New("no such file")}
	d := newTestDashboard(src)

	if _, err := d.Stations(context.Background()); err == nil {
		t.Fatal("failed load returned stations")
	}
}

func TestDashboardStations(t *testing.T) {
	d := newTestDashboard(&fakeSource{ds: sampleDataset()})

	stats, err := d.Stations(context.Background())
	if err != nil {
		t.Fatalf("Stations: %v", err)
	}
	if len(stats) != 4 {
		t.Fatalf("got %d stations, want 4", len(stats))
	}
	// Avg rent for A is (15+13)/2; usage rate (20-14)/20.
	if stats[0].StationID != "A" || stats[0].AvgRent != 14 || stats[0].UsageRate != 0.3 {
		t.Errorf("station A stats: %+v", stats[0])
	}
}

func TestDashboardBuckets(t *testing.T) {
	d := newTestDashboard(&fakeSource{ds: sampleDataset()})
	ctx := context.Background()

	bucketing, stations, err := d.Buckets(ctx, "avg_rent", nil)
	if err != nil {
		t.Fatalf("Buckets: %v", err)
	}
	if bucketing.Metric != "avg_rent" || len(bucketing.Groups) != 4 {
		t.Errorf("bucketing = %+v", bucketing)
	}
	if len(stations) != 4 {
		t.Errorf("empty selection returned %d stations, want all 4", len(stations))
	}
	if len(bucketing.Assignments) != 4 {
		t.Errorf("got %d assignments, want 4", len(bucketing.Assignments))
	}

	// Second call is served from cache and must agree with the first.
	again, _, err := d.Buckets(ctx, "avg_rent", nil)
	if err != nil {
		t.Fatalf("Buckets (cached): %v", err)
	}
	for id, label := range bucketing.Assignments {
		if again.Assignments[id] != label {
			t.Errorf("cached assignment for %s = %q, want %q", id, again.Assignments[id], label)
		}
	}

	_, filtered, err := d.Buckets(ctx, "avg_rent", []string{models.GroupHigh})
	if err != nil {
		t.Fatalf("Buckets (filtered): %v", err)
	}
	for _, s := range filtered {
		if bucketing.Assignments[s.StationID] != models.GroupHigh {
			t.Errorf("station %s leaked into the high selection", s.StationID)
		}
	}
}

func TestDashboardBucketsUnknownMetric(t *testing.T) {
	d := newTestDashboard(&fakeSource{ds: sampleDataset()})

	if _, _, err := d.Buckets(context.Background(), "bogus", nil); err == nil {
		t.Fatal("unknown metric accepted")
	}
}

func TestDashboardMap(t *testing.T) {
	d := newTestDashboard(&fakeSource{ds: sampleDataset()})

	view, err := d.Map(context.Background(), analytics.MapMetricRentBikes, 10)
	if err != nil {
		t.Fatalf("Map: %v", err)
	}
	// A averages 14 rent bikes and C 25; B and D fall under the min.
	if len(view.Markers) != 2 {
		t.Fatalf("got %d markers, want 2", len(view.Markers))
	}
	for _, m := range view.Markers {
		if m.Value < 10 {
			t.Errorf("marker %s below the min threshold: %v", m.StationID, m.Value)
		}
		if m.Color == "" {
			t.Errorf("marker %s has no color", m.StationID)
		}
	}
}

func TestDashboardSummary(t *testing.T) {
	d := newTestDashboard(&fakeSource{ds: sampleDataset()})

	got, err := d.Summary(context.Background(), analytics.MapMetricRentBikes)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if got.Overall.Stations != 4 {
		t.Errorf("stations = %d, want 4", got.Overall.Stations)
	}
	if len(got.TopStations) != 4 {
		t.Fatalf("got %d top stations, want 4", len(got.TopStations))
	}
	if got.TopStations[0].StationID != "C" {
		t.Errorf("top station = %s, want C", got.TopStations[0].StationID)
	}
}

func TestDashboardExportCSV(t *testing.T) {
	d := newTestDashboard(&fakeSource{ds: sampleDataset()})

	data, err := d.ExportCSV(context.Background())
	if err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}

	text := string(data)
	if !strings.HasPrefix(text, "station_id,station_name,short_name") {
		t.Errorf("unexpected header: %q", strings.SplitN(text, "\n", 2)[0])
	}
	lines := strings.Count(strings.TrimRight(text, "\n"), "\n")
	if lines != 4 {
		t.Errorf("export has %d data lines, want 4", lines)
	}
}
