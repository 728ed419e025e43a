package analytics

import (
	"fmt"

	"StationPulse/internal/domain/models"
	domsvc "StationPulse/internal/domain/service"
)

// ThresholdClassifier colors map markers with fixed literal cutoffs per
// metric. Deliberately independent from the quartile bucketizer: the map is
// an absolute threshold filter, not a distribution view.
type ThresholdClassifier struct{}

func NewThresholdClassifier() *ThresholdClassifier {
	return &ThresholdClassifier{}
}

var _ domsvc.MapClassifier = (*ThresholdClassifier)(nil)

// Map metric columns. Percent rates are relative to station capacity.
const (
	MapMetricRentBikes  = "available_rent_bikes"
	MapMetricReturnRate = "return_availability_rate"
	MapMetricUsageRate  = "bike_usage_rate"
	MapMetricTotal      = "total"
)

func (c *ThresholdClassifier) Classify(stats []models.StationStats, metric string, min float64) (models.MapView, error) {
	pick, err := mapMetric(metric)
	if err != nil {
		return models.MapView{}, err
	}

	view := models.MapView{
		Metric:   metric,
		MinValue: min,
		Markers:  make([]models.Marker, 0, len(stats)),
	}

	for _, s := range stats {
		m := marker(s)
		m.Value = pick(m)
		if m.Value < min {
			continue
		}
		m.Color = markerColor(metric, m.Value)
		view.Markers = append(view.Markers, m)
	}

	return view, nil
}

func marker(s models.StationStats) models.Marker {
	m := models.Marker{
		StationID:   s.StationID,
		StationName: s.StationName,
		Latitude:    s.Latitude,
		Longitude:   s.Longitude,
		Capacity:    s.Capacity,
		AvgRent:     s.AvgRent,
		AvgReturn:   s.AvgReturn,
	}
	if s.Capacity > 0 {
		total := float64(s.Capacity)
		m.UsagePct = round2(s.AvgRent / total * 100)
		m.ReturnPct = round2(s.AvgReturn / total * 100)
	}
	return m
}

func mapMetric(name string) (func(models.Marker) float64, error) {
	switch name {
	case MapMetricRentBikes:
		return func(m models.Marker) float64 { return m.AvgRent }, nil
	case MapMetricReturnRate:
		return func(m models.Marker) float64 { return m.ReturnPct }, nil
	case MapMetricUsageRate:
		return func(m models.Marker) float64 { return m.UsagePct }, nil
	case MapMetricTotal:
		return func(m models.Marker) float64 { return float64(m.Capacity) }, nil
	default:
		return nil, fmt.Errorf("unknown map metric %q", name)
	}
}

// markerColor applies the per-metric literal cutoffs. Usage rate inverts the
// palette: a busy station is a red flag, not a green one.
func markerColor(metric string, value float64) string {
	switch metric {
	case MapMetricRentBikes:
		switch {
		case value >= 10:
			return models.ColorGreen
		case value >= 5:
			return models.ColorOrange
		default:
			return models.ColorRed
		}
	case MapMetricReturnRate:
		switch {
		case value >= 70:
			return models.ColorGreen
		case value >= 40:
			return models.ColorOrange
		default:
			return models.ColorRed
		}
	case MapMetricUsageRate:
		switch {
		case value >= 50:
			return models.ColorRed
		case value >= 25:
			return models.ColorOrange
		default:
			return models.ColorGreen
		}
	default: // total
		switch {
		case value >= 40:
			return models.ColorGreen
		case value >= 20:
			return models.ColorOrange
		default:
			return models.ColorRed
		}
	}
}
