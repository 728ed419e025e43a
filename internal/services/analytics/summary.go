package analytics

import (
	"sort"

	"StationPulse/internal/domain/models"
	domsvc "StationPulse/internal/domain/service"
	"StationPulse/pkg/util"
)

// Thresholds for peak-hour detection, relative to the mean hourly volume.
const (
	peakFactor    = 1.2
	offPeakFactor = 0.8
	topHours      = 2
	topStations   = 5
)

// PanelSummarizer builds the dashboard side panels: top-5 stations by the
// selected map metric, dataset-wide headline numbers, and peak/off-peak
// hour ranges detected from hourly rental volume.
type PanelSummarizer struct{}

func NewPanelSummarizer() *PanelSummarizer {
	return &PanelSummarizer{}
}

var _ domsvc.Summarizer = (*PanelSummarizer)(nil)

func (p *PanelSummarizer) Summarize(stats []models.StationStats, snapshots []models.Snapshot, metric string) (models.Summary, error) {
	pick, err := mapMetric(metric)
	if err != nil {
		return models.Summary{}, err
	}

	summary := models.Summary{
		Metric:      metric,
		TopStations: rankStations(stats, pick),
		Overall:     overall(stats, snapshots),
	}
	summary.PeakHours, summary.OffPeakHours = peakHours(snapshots)

	return summary, nil
}

func rankStations(stats []models.StationStats, pick func(models.Marker) float64) []models.RankedStation {
	ranked := make([]models.RankedStation, 0, len(stats))
	for _, s := range stats {
		ranked = append(ranked, models.RankedStation{
			StationID:   s.StationID,
			StationName: s.StationName,
			ShortName:   s.ShortName,
			Value:       pick(marker(s)),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Value > ranked[j].Value
	})

	if len(ranked) > topStations {
		ranked = ranked[:topStations]
	}
	return ranked
}

func overall(stats []models.StationStats, snapshots []models.Snapshot) models.OverallStats {
	o := models.OverallStats{Stations: len(stats)}

	if len(stats) > 0 {
		var capSum float64
		for _, s := range stats {
			capSum += float64(s.Capacity)
		}
		o.AvgCapacity = round2(capSum / float64(len(stats)))
	}

	if len(snapshots) > 0 {
		var rentSum, usageSum float64
		for _, snap := range snapshots {
			rentSum += float64(snap.AvailableRent)
			if snap.Capacity > 0 {
				usageSum += float64(snap.AvailableRent) / float64(snap.Capacity) * 100
			}
		}
		n := float64(len(snapshots))
		o.AvgRent = round2(rentSum / n)
		o.AvgUsageRate = round2(usageSum / n)
	}

	return o
}

// peakHours sums rental availability per hour of day; hours at least 20%
// above the hourly mean are peaks, hours at least 20% below are off-peak.
// The two strongest of each are reported as "HH:00-HH:00" ranges.
func peakHours(snapshots []models.Snapshot) (peaks, offPeaks []string) {
	sums := make(map[int]float64)
	for _, snap := range snapshots {
		sums[snap.Hour] += float64(snap.AvailableRent)
	}
	if len(sums) == 0 {
		return nil, nil
	}

	var total float64
	for _, v := range sums {
		total += v
	}
	mean := total / float64(len(sums))

	type hourVolume struct {
		hour int
		sum  float64
	}
	var over, under []hourVolume
	for h, v := range sums {
		if v >= mean*peakFactor {
			over = append(over, hourVolume{h, v})
		}
		if v <= mean*offPeakFactor {
			under = append(under, hourVolume{h, v})
		}
	}

	sort.Slice(over, func(i, j int) bool {
		if over[i].sum != over[j].sum {
			return over[i].sum > over[j].sum
		}
		return over[i].hour < over[j].hour
	})
	sort.Slice(under, func(i, j int) bool {
		if under[i].sum != under[j].sum {
			return under[i].sum < under[j].sum
		}
		return under[i].hour < under[j].hour
	})

	format := func(hv []hourVolume) []string {
		if len(hv) > topHours {
			hv = hv[:topHours]
		}
		out := make([]string, 0, len(hv))
		for _, e := range hv {
			out = append(out, util.FormatHourRange(e.hour))
		}
		return out
	}

	return format(over), format(under)
}
