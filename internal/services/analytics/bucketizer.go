package analytics

import (
	"StationPulse/internal/domain/models"
	domsvc "StationPulse/internal/domain/service"
)

// QuartileBucketizer partitions stations into four contiguous groups at the
// 25th/50th/75th percentiles of a metric column.
//
// Boundary rule: group "low" spans [min, q1] inclusive on both ends; the
// remaining groups span (prev, upper], exclusive on the lower bound. A value
// sitting exactly on a quartile therefore belongs to the lower group only,
// and the four groups partition the station set exactly. A near-constant
// metric collapses quartiles; the upper groups simply come out empty.
type QuartileBucketizer struct{}

func NewQuartileBucketizer() *QuartileBucketizer {
	return &QuartileBucketizer{}
}

var _ domsvc.Bucketizer = (*QuartileBucketizer)(nil)

func (b *QuartileBucketizer) Bucketize(stats []models.StationStats, metric string) (models.Bucketing, error) {
	acc, err := statMetric(metric)
	if err != nil {
		return models.Bucketing{}, err
	}

	result := models.Bucketing{
		Metric:      metric,
		Assignments: make(map[string]string, len(stats)),
	}

	if len(stats) == 0 {
		return result, nil
	}

	values := make([]float64, len(stats))
	for i := range stats {
		values[i] = acc(stats[i])
	}

	sorted := sortedCopy(values)
	min := sorted[0]
	max := sorted[len(sorted)-1]
	q1 := percentile(sorted, 0.25)
	q2 := percentile(sorted, 0.50)
	q3 := percentile(sorted, 0.75)

	groups := []models.BucketGroup{
		{Label: models.GroupLow, Lower: min, Upper: q1, Rule: models.InclusiveLow},
		{Label: models.GroupMidLow, Lower: q1, Upper: q2, Rule: models.ExclusiveLow},
		{Label: models.GroupMidHigh, Lower: q2, Upper: q3, Rule: models.ExclusiveLow},
		{Label: models.GroupHigh, Lower: q3, Upper: max, Rule: models.ExclusiveLow},
	}

	for i := range stats {
		label := assign(values[i], groups)
		result.Assignments[stats[i].StationID] = label
		for gi := range groups {
			if groups[gi].Label == label {
				groups[gi].Stations++
			}
		}
	}

	result.Groups = groups
	return result, nil
}

// assign picks the first group whose interval contains v. Group order makes
// the choice unambiguous at the shared quartile boundaries.
func assign(v float64, groups []models.BucketGroup) string {
	for _, g := range groups {
		if g.Rule == models.InclusiveLow {
			if v >= g.Lower && v <= g.Upper {
				return g.Label
			}
			continue
		}
		if v > g.Lower && v <= g.Upper {
			return g.Label
		}
	}
	// Float noise can leave v a hair above max; it belongs to the top group.
	return groups[len(groups)-1].Label
}

// FilterByGroups keeps only stations assigned to one of the selected group
// labels. An empty selection keeps everything. This is a presentation
// post-filter; quartiles are not recomputed.
func FilterByGroups(stats []models.StationStats, bucketing models.Bucketing, selected []string) []models.StationStats {
	if len(selected) == 0 {
		return stats
	}
	keep := make(map[string]struct{}, len(selected))
	for _, label := range selected {
		keep[label] = struct{}{}
	}

	out := make([]models.StationStats, 0, len(stats))
	for _, s := range stats {
		if _, ok := keep[bucketing.Assignments[s.StationID]]; ok {
			out = append(out, s)
		}
	}
	return out
}
