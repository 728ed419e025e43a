package analytics

import (
	"testing"

	"StationPulse/internal/domain/models"
)

func mapRow(id string, total int, avgRent, avgReturn float64) models.StationStats {
	return models.StationStats{
		StationID:   id,
		StationName: "X_" + id,
		Capacity:    total,
		AvgRent:     avgRent,
		AvgReturn:   avgReturn,
	}
}

func TestClassifyRentBikeColors(t *testing.T) {
	c := NewThresholdClassifier()

	view, err := c.Classify([]models.StationStats{
		mapRow("green", 30, 12, 5),
		mapRow("orange", 30, 7, 5),
		mapRow("red", 30, 3, 5),
	}, MapMetricRentBikes, 0)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}

	want := map[string]string{
		"green":  models.ColorGreen,
		"orange": models.ColorOrange,
		"red":    models.ColorRed,
	}
	for _, m := range view.Markers {
		if m.Color != want[m.StationID] {
			t.Errorf("station %s colored %s, want %s", m.StationID, m.Color, want[m.StationID])
		}
	}
}

func TestClassifyUsageRateInvertsPalette(t *testing.T) {
	c := NewThresholdClassifier()

	// 15/20 = 75% usage: a crowded station maps to red.
	view, err := c.Classify([]models.StationStats{
		mapRow("busy", 20, 15, 5),
		mapRow("calm", 20, 2, 18),
	}, MapMetricUsageRate, 0)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}

	byID := make(map[string]models.Marker)
	for _, m := range view.Markers {
		byID[m.StationID] = m
	}

	if byID["busy"].Color != models.ColorRed {
		t.Errorf("75%% usage colored %s, want red", byID["busy"].Color)
	}
	if byID["calm"].Color != models.ColorGreen {
		t.Errorf("10%% usage colored %s, want green", byID["calm"].Color)
	}
	if byID["busy"].UsagePct != 75 {
		t.Errorf("usage pct = %v, want 75", byID["busy"].UsagePct)
	}
}

func TestClassifyReturnRateThresholds(t *testing.T) {
	c := NewThresholdClassifier()

	view, err := c.Classify([]models.StationStats{
		mapRow("green", 20, 2, 16),  // 80%
		mapRow("orange", 20, 10, 9), // 45%
		mapRow("red", 20, 18, 2),    // 10%
	}, MapMetricReturnRate, 0)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}

	for _, m := range view.Markers {
		want := map[string]string{
			"green":  models.ColorGreen,
			"orange": models.ColorOrange,
			"red":    models.ColorRed,
		}[m.StationID]
		if m.Color != want {
			t.Errorf("station %s (return %.0f%%) colored %s, want %s", m.StationID, m.ReturnPct, m.Color, want)
		}
	}
}

func TestClassifyTotalThresholds(t *testing.T) {
	c := NewThresholdClassifier()

	view, err := c.Classify([]models.StationStats{
		mapRow("big", 45, 0, 0),
		mapRow("mid", 25, 0, 0),
		mapRow("small", 12, 0, 0),
	}, MapMetricTotal, 0)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}

	want := map[string]string{
		"big":   models.ColorGreen,
		"mid":   models.ColorOrange,
		"small": models.ColorRed,
	}
	for _, m := range view.Markers {
		if m.Color != want[m.StationID] {
			t.Errorf("station %s (total %d) colored %s, want %s", m.StationID, m.Capacity, m.Color, want[m.StationID])
		}
	}
}

func TestClassifyMinValueFilter(t *testing.T) {
	c := NewThresholdClassifier()

	view, err := c.Classify([]models.StationStats{
		mapRow("keep", 30, 12, 5),
		mapRow("drop", 30, 3, 5),
	}, MapMetricRentBikes, 5)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}

	if len(view.Markers) != 1 || view.Markers[0].StationID != "keep" {
		t.Errorf("min filter kept %v", view.Markers)
	}
	if view.MinValue != 5 {
		t.Errorf("view min value = %v, want 5", view.MinValue)
	}
}

func TestClassifyZeroCapacityPercents(t *testing.T) {
	c := NewThresholdClassifier()

	view, err := c.Classify([]models.StationStats{mapRow("empty", 0, 0, 0)}, MapMetricUsageRate, 0)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}

	m := view.Markers[0]
	if m.UsagePct != 0 || m.ReturnPct != 0 {
		t.Errorf("zero-capacity pcts: usage=%v return=%v, want 0", m.UsagePct, m.ReturnPct)
	}
}

func TestClassifyUnknownMetric(t *testing.T) {
	c := NewThresholdClassifier()

	if _, err := c.Classify(nil, "altitude", 0); err == nil {
		t.Fatal("unknown map metric accepted")
	}
}
