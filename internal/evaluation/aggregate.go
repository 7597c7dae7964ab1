package evaluation

import (
	"errors"
	"sort"
)

// ErrNoValues is returned when aggregating an empty slice.
var ErrNoValues = errors.New("evaluation: no values to aggregate")

// Summary holds aggregate scores over a set of per-patch metric values.
type Summary struct {
	Mean   float64 `json:"mean" yaml:"mean"`
	Max    float64 `json:"max" yaml:"max"`
	Median float64 `json:"median" yaml:"median"`
	P95    float64 `json:"p95" yaml:"p95"`
	N      int     `json:"n" yaml:"n"`
}

// Aggregate computes summary statistics over values. Percentiles use linear
// interpolation between order statistics.
func Aggregate(values []float64) (Summary, error) {
	if len(values) == 0 {
		return Summary{}, ErrNoValues
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	var sum float64
	for _, v := range sorted {
		sum += v
	}

	return Summary{
		Mean:   sum / float64(len(sorted)),
		Max:    sorted[len(sorted)-1],
		Median: percentile(sorted, 0.5),
		P95:    percentile(sorted, 0.95),
		N:      len(sorted),
	}, nil
}

// percentile returns the p-quantile (0 ≤ p ≤ 1) of sorted values with linear
// interpolation.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := p * float64(len(sorted)-1)
	lo := int(pos)
	if lo >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[lo+1]*frac
}
