package analytics

import (
	"math"
	"sort"
)

// round2 / round3 match the precision of the exported statistics table:
// aggregate columns carry two decimals, ratio columns three.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// percentile computes the p-quantile (0 <= p <= 1) with linear interpolation
// between closest ranks, the (n-1)*p convention. gonum's CumulantKind
// quantiles follow a different convention, so this stays local.
func percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	if n == 1 {
		return sorted[0]
	}
	h := p * float64(n-1)
	lo := int(math.Floor(h))
	hi := int(math.Ceil(h))
	if lo == hi {
		return sorted[lo]
	}
	frac := h - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}

func sortedCopy(values []float64) []float64 {
	out := make([]float64, len(values))
	copy(out, values)
	sort.Float64s(out)
	return out
}
