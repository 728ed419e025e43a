package analytics

import (
	"fmt"
	"sort"

	"StationPulse/internal/domain/models"
)

// statAccessor reads one metric column off a StationStats row.
type statAccessor func(models.StationStats) float64

// statMetrics are the metric columns the quartile bucketizer accepts.
// stability_index and circulation_rate address the same stored column.
var statMetrics = map[string]statAccessor{
	"usage_rate":       func(s models.StationStats) float64 { return s.UsageRate },
	"rent_ease":        func(s models.StationStats) float64 { return s.RentEase },
	"return_ease":      func(s models.StationStats) float64 { return s.ReturnEase },
	"rent_cv":          func(s models.StationStats) float64 { return s.RentCV },
	"return_cv":        func(s models.StationStats) float64 { return s.ReturnCV },
	"stability_index":  func(s models.StationStats) float64 { return s.StabilityIndex },
	"circulation_rate": func(s models.StationStats) float64 { return s.StabilityIndex },
	"efficiency":       func(s models.StationStats) float64 { return s.Efficiency },
	"total_capacity":   func(s models.StationStats) float64 { return float64(s.Capacity) },
	"avg_rent":         func(s models.StationStats) float64 { return s.AvgRent },
	"avg_return":       func(s models.StationStats) float64 { return s.AvgReturn },
}

// StatMetricNames lists the accepted metric columns, sorted.
func StatMetricNames() []string {
	names := make([]string, 0, len(statMetrics))
	for name := range statMetrics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func statMetric(name string) (statAccessor, error) {
	acc, ok := statMetrics[name]
	if !ok {
		return nil, fmt.Errorf("unknown metric column %q", name)
	}
	return acc, nil
}
