package repository

import (
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/csv"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"StationPulse/internal/domain/models"
	domrepo "StationPulse/internal/domain/repository"
	applogger "StationPulse/pkg/logger"
	"StationPulse/pkg/util"
)

// Column names as exported by the station feed.
var requiredColumns = []string{
	"sno", "sna", "infoTime", "total",
	"available_rent_bikes", "available_return_bikes",
	"latitude", "longitude",
}

// CSVSource reads station snapshots from a CSV file, optionally
// gzip-compressed (".gz" suffix). Malformed rows are dropped and counted;
// a missing or unreadable file fails the load.
type CSVSource struct {
	path    string
	logger  *applogger.Logger
	metrics domrepo.Metrics
}

// NewCSVSource creates a snapshot source over a CSV file.
func NewCSVSource(path string, logger *applogger.Logger, metrics domrepo.Metrics) *CSVSource {
	return &CSVSource{path: path, logger: logger, metrics: metrics}
}

var _ domrepo.SnapshotSource = (*CSVSource)(nil)

// Load reads and parses the whole dataset. The dataset identity hash covers
// the raw file bytes, so a changed file yields a different identity.
func (s *CSVSource) Load(ctx context.Context) (*models.Dataset, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if s.metrics != nil {
			s.metrics.RecordError("dataset_read")
		}
		return nil, fmt.Errorf("read dataset %s: %w", s.path, err)
	}

	sum := sha256.Sum256(raw)

	var reader io.Reader = bytes.NewReader(raw)
	if strings.HasSuffix(s.path, ".gz") {
		gz, err := gzip.NewReader(reader)
		if err != nil {
			return nil, fmt.Errorf("open gzip dataset %s: %w", s.path, err)
		}
		defer gz.Close()
		reader = gz
	}

	snapshots, dropped, err := s.parse(ctx, reader)
	if err != nil {
		if s.metrics != nil {
			s.metrics.RecordError("dataset_parse")
		}
		return nil, fmt.Errorf("parse dataset %s: %w", s.path, err)
	}

	stations := countStations(snapshots)

	report := models.LoadReport{
		Path:        s.path,
		Rows:        len(snapshots),
		DroppedRows: dropped,
		Stations:    stations,
		Hash:        hex.EncodeToString(sum[:]),
		LoadedAt:    time.Now(),
	}

	if s.metrics != nil {
		s.metrics.RecordDatasetLoad(report.Rows, report.DroppedRows, report.Stations)
	}
	if s.logger != nil {
		s.logger.Info("dataset loaded",
			applogger.String("path", s.path),
			applogger.Int("rows", report.Rows),
			applogger.Int("dropped_rows", report.DroppedRows),
			applogger.Int("stations", report.Stations),
		)
	}

	return &models.Dataset{Snapshots: snapshots, Report: report}, nil
}

func (s *CSVSource) parse(ctx context.Context, r io.Reader) ([]models.Snapshot, int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // row width checked via the header index

	header, err := cr.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("read header: %w", err)
	}

	idx, err := columnIndex(header)
	if err != nil {
		return nil, 0, err
	}

	var snapshots []models.Snapshot
	dropped := 0

	for {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}

		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Structurally broken row (bad quoting etc.) is dropped like a
			// row with bad values.
			dropped++
			continue
		}

		snap, ok := parseRow(record, idx)
		if !ok {
			dropped++
			continue
		}
		snapshots = append(snapshots, snap)
	}

	if dropped > 0 && s.logger != nil {
		s.logger.Warn("dropped malformed snapshot rows",
			applogger.String("path", s.path),
			applogger.Int("dropped_rows", dropped),
		)
	}

	return snapshots, dropped, nil
}

func columnIndex(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("missing required column %q", col)
		}
	}
	return idx, nil
}

func parseRow(record []string, idx map[string]int) (models.Snapshot, bool) {
	field := func(col string) (string, bool) {
		i := idx[col]
		if i >= len(record) {
			return "", false
		}
		return strings.TrimSpace(record[i]), true
	}

	var snap models.Snapshot
	var ok bool

	if snap.StationID, ok = field("sno"); !ok || snap.StationID == "" {
		return snap, false
	}
	if snap.StationName, ok = field("sna"); !ok || snap.StationName == "" {
		return snap, false
	}

	ts, ok := field("infoTime")
	if !ok {
		return snap, false
	}
	t, parsed := util.ParseTimestamp(ts)
	if !parsed {
		return snap, false
	}
	snap.Timestamp = t
	snap.Hour = t.Hour()

	ints := []struct {
		col  string
		dest *int
	}{
		{"total", &snap.Capacity},
		{"available_rent_bikes", &snap.AvailableRent},
		{"available_return_bikes", &snap.AvailableReturn},
	}
	for _, f := range ints {
		raw, ok := field(f.col)
		if !ok {
			return snap, false
		}
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return snap, false
		}
		*f.dest = v
	}

	floats := []struct {
		col  string
		dest *float64
	}{
		{"latitude", &snap.Latitude},
		{"longitude", &snap.Longitude},
	}
	for _, f := range floats {
		raw, ok := field(f.col)
		if !ok {
			return snap, false
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return snap, false
		}
		*f.dest = v
	}

	return snap, true
}

func countStations(snapshots []models.Snapshot) int {
	seen := make(map[string]struct{})
	for i := range snapshots {
		seen[snapshots[i].StationID] = struct{}{}
	}
	return len(seen)
}
