package analytics

import (
	"testing"

	"StationPulse/internal/domain/models"
)

func statRow(id string, avgRent float64) models.StationStats {
	return models.StationStats{StationID: id, StationName: "X_" + id, AvgRent: avgRent}
}

func TestBucketizePartitions(t *testing.T) {
	b := NewQuartileBucketizer()

	stats := make([]models.StationStats, 0, 8)
	for i, id := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		stats = append(stats, statRow(id, float64(i+1)))
	}

	got, err := b.Bucketize(stats, "avg_rent")
	if err != nil {
		t.Fatalf("Bucketize: %v", err)
	}

	if len(got.Groups) != 4 {
		t.Fatalf("got %d groups, want 4", len(got.Groups))
	}
	if len(got.Assignments) != len(stats) {
		t.Fatalf("got %d assignments, want %d", len(got.Assignments), len(stats))
	}

	// Every station lands in exactly one group and the counters add up.
	var counted int
	for _, g := range got.Groups {
		counted += g.Stations
	}
	if counted != len(stats) {
		t.Errorf("group counters sum to %d, want %d", counted, len(stats))
	}

	// Values 1..8: quartiles at 2.75 / 4.5 / 6.25 split into pairs.
	want := map[string]string{
		"a": models.GroupLow, "b": models.GroupLow,
		"c": models.GroupMidLow, "d": models.GroupMidLow,
		"e": models.GroupMidHigh, "f": models.GroupMidHigh,
		"g": models.GroupHigh, "h": models.GroupHigh,
	}
	for id, label := range want {
		if got.Assignments[id] != label {
			t.Errorf("station %s assigned %q, want %q", id, got.Assignments[id], label)
		}
	}
}

func TestBucketizeBoundaryBelongsToLowerGroup(t *testing.T) {
	b := NewQuartileBucketizer()

	// Values 0..4 put the quartiles exactly on 1, 2 and 3.
	stats := []models.StationStats{
		statRow("v0", 0), statRow("v1", 1), statRow("v2", 2), statRow("v3", 3), statRow("v4", 4),
	}

	got, err := b.Bucketize(stats, "avg_rent")
	if err != nil {
		t.Fatalf("Bucketize: %v", err)
	}

	if got.Assignments["v1"] != models.GroupLow {
		t.Errorf("value on q1 assigned %q, want low", got.Assignments["v1"])
	}
	if got.Assignments["v2"] != models.GroupMidLow {
		t.Errorf("value on q2 assigned %q, want mid-low", got.Assignments["v2"])
	}
	if got.Assignments["v3"] != models.GroupMidHigh {
		t.Errorf("value on q3 assigned %q, want mid-high", got.Assignments["v3"])
	}
	if got.Assignments["v4"] != models.GroupHigh {
		t.Errorf("max value assigned %q, want high", got.Assignments["v4"])
	}
}

func TestBucketizeConstantMetric(t *testing.T) {
	b := NewQuartileBucketizer()

	stats := []models.StationStats{statRow("a", 3), statRow("b", 3), statRow("c", 3)}

	got, err := b.Bucketize(stats, "avg_rent")
	if err != nil {
		t.Fatalf("Bucketize: %v", err)
	}
	for id, label := range got.Assignments {
		if label != models.GroupLow {
			t.Errorf("station %s assigned %q, want all in low for a constant metric", id, label)
		}
	}
	if got.Groups[0].Stations != 3 {
		t.Errorf("low group counts %d stations, want 3", got.Groups[0].Stations)
	}
}

func TestBucketizeTwoStations(t *testing.T) {
	b := NewQuartileBucketizer()

	got, err := b.Bucketize([]models.StationStats{statRow("lo", 1), statRow("hi", 9)}, "avg_rent")
	if err != nil {
		t.Fatalf("Bucketize: %v", err)
	}
	if got.Assignments["lo"] != models.GroupLow {
		t.Errorf("min assigned %q, want low", got.Assignments["lo"])
	}
	if got.Assignments["hi"] != models.GroupHigh {
		t.Errorf("max assigned %q, want high", got.Assignments["hi"])
	}
}

func TestBucketizeEmptyInput(t *testing.T) {
	b := NewQuartileBucketizer()

	got, err := b.Bucketize(nil, "usage_rate")
	if err != nil {
		t.Fatalf("Bucketize: %v", err)
	}
	if len(got.Groups) != 0 || len(got.Assignments) != 0 {
		t.Errorf("empty input produced %d groups, %d assignments", len(got.Groups), len(got.Assignments))
	}
}

func TestBucketizeUnknownMetric(t *testing.T) {
	b := NewQuartileBucketizer()

	if _, err := b.Bucketize([]models.StationStats{statRow("a", 1)}, "nope"); err == nil {
		t.Fatal("unknown metric accepted")
	}
}

func TestBucketizeMetricAlias(t *testing.T) {
	b := NewQuartileBucketizer()

	stats := []models.StationStats{
		{StationID: "a", StabilityIndex: 0.1},
		{StationID: "b", StabilityIndex: 0.9},
	}

	byStability, err := b.Bucketize(stats, "stability_index")
	if err != nil {
		t.Fatalf("Bucketize stability_index: %v", err)
	}
	byCirculation, err := b.Bucketize(stats, "circulation_rate")
	if err != nil {
		t.Fatalf("Bucketize circulation_rate: %v", err)
	}

	for id, label := range byStability.Assignments {
		if byCirculation.Assignments[id] != label {
			t.Errorf("station %s: circulation_rate assigned %q, stability_index %q", id, byCirculation.Assignments[id], label)
		}
	}
}

func TestFilterByGroups(t *testing.T) {
	stats := []models.StationStats{statRow("a", 1), statRow("b", 5), statRow("c", 9)}
	bucketing := models.Bucketing{
		Assignments: map[string]string{
			"a": models.GroupLow,
			"b": models.GroupMidHigh,
			"c": models.GroupHigh,
		},
	}

	kept := FilterByGroups(stats, bucketing, []string{models.GroupLow, models.GroupHigh})
	if len(kept) != 2 || kept[0].StationID != "a" || kept[1].StationID != "c" {
		t.Errorf("filtered to %v", kept)
	}

	all := FilterByGroups(stats, bucketing, nil)
	if len(all) != 3 {
		t.Errorf("empty selection kept %d stations, want all 3", len(all))
	}
}
