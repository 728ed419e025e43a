package analytics

import (
	"sort"

	"StationPulse/internal/domain/models"
	domsvc "StationPulse/internal/domain/service"
	"StationPulse/pkg/util"

	"gonum.org/v1/gonum/stat"
)

// StationAggregator groups snapshots by station and derives the statistics
// table plus the hourly availability trend.
//
// Conventions:
//   - Group key is (station id, station name); if an id appears under more
//     than one name, the first-seen name wins.
//   - Capacity, latitude and longitude come from the first row per station.
//   - Std is the unbiased sample standard deviation; a single-observation
//     station reports 0 rather than an undefined value.
//   - Ratios are computed from the rounded aggregate columns, as the
//     exported table displays them.
type StationAggregator struct{}

func NewStationAggregator() *StationAggregator {
	return &StationAggregator{}
}

var _ domsvc.Aggregator = (*StationAggregator)(nil)

type stationGroup struct {
	first   models.Snapshot
	rents   []float64
	returns []float64
}

func (a *StationAggregator) Aggregate(snapshots []models.Snapshot) ([]models.StationStats, []models.HourlyAggregate) {
	groups := make(map[string]*stationGroup)
	order := make([]string, 0)

	for _, snap := range snapshots {
		g, ok := groups[snap.StationID]
		if !ok {
			g = &stationGroup{first: snap}
			groups[snap.StationID] = g
			order = append(order, snap.StationID)
		}
		g.rents = append(g.rents, float64(snap.AvailableRent))
		g.returns = append(g.returns, float64(snap.AvailableReturn))
	}

	stats := make([]models.StationStats, 0, len(order))
	for _, id := range order {
		stats = append(stats, deriveStation(groups[id]))
	}

	return stats, hourlyTrend(snapshots)
}

func deriveStation(g *stationGroup) models.StationStats {
	s := models.StationStats{
		StationID:   g.first.StationID,
		StationName: g.first.StationName,
		ShortName:   util.ShortName(g.first.StationName),
		Capacity:    g.first.Capacity,
		Latitude:    g.first.Latitude,
		Longitude:   g.first.Longitude,
	}

	s.AvgRent = round2(stat.Mean(g.rents, nil))
	s.StdRent = round2(sampleStd(g.rents))
	s.MinRent, s.MaxRent = intMinMax(g.rents)

	s.AvgReturn = round2(stat.Mean(g.returns, nil))
	s.StdReturn = round2(sampleStd(g.returns))
	s.MinReturn, s.MaxReturn = intMinMax(g.returns)

	total := float64(s.Capacity)
	if s.Capacity == 0 {
		// Division by zero capacity: ratios stay 0, flagged so consumers
		// can tell "degenerate" from "genuinely zero".
		s.ZeroCapacity = true
	} else {
		s.UsageRate = round3((total - s.AvgRent) / total)
		s.RentEase = round3(s.AvgRent / total)
		s.ReturnEase = round3(s.AvgReturn / total)
	}

	s.RentCV = variationCoeff(s.StdRent, s.AvgRent)
	s.ReturnCV = variationCoeff(s.StdReturn, s.AvgReturn)
	s.StabilityIndex = round3((s.RentCV + s.ReturnCV) / 2)
	s.Efficiency = round3(s.UsageRate * s.StabilityIndex)

	return s
}

// sampleStd is the unbiased sample standard deviation, with the singleton
// group coerced to 0.
func sampleStd(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	return stat.StdDev(xs, nil)
}

// variationCoeff is std/mean, defined as 0 when the mean is 0 (flat,
// no-variation semantics rather than an undefined ratio).
func variationCoeff(std, mean float64) float64 {
	if mean == 0 {
		return 0
	}
	return round3(std / mean)
}

func intMinMax(xs []float64) (int, int) {
	if len(xs) == 0 {
		return 0, 0
	}
	min, max := xs[0], xs[0]
	for _, v := range xs[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return int(min), int(max)
}

// hourlyTrend averages availability per hour of day over the whole dataset.
// Hours without observations are absent from the result.
func hourlyTrend(snapshots []models.Snapshot) []models.HourlyAggregate {
	type hourAcc struct {
		rent  float64
		ret   float64
		count int
	}
	acc := make(map[int]*hourAcc)

	for _, snap := range snapshots {
		h, ok := acc[snap.Hour]
		if !ok {
			h = &hourAcc{}
			acc[snap.Hour] = h
		}
		h.rent += float64(snap.AvailableRent)
		h.ret += float64(snap.AvailableReturn)
		h.count++
	}

	hours := make([]int, 0, len(acc))
	for h := range acc {
		hours = append(hours, h)
	}
	sort.Ints(hours)

	out := make([]models.HourlyAggregate, 0, len(hours))
	for _, h := range hours {
		a := acc[h]
		out = append(out, models.HourlyAggregate{
			Hour:      h,
			AvgRent:   round2(a.rent / float64(a.count)),
			AvgReturn: round2(a.ret / float64(a.count)),
		})
	}
	return out
}
