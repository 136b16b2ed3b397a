package pcurve

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var _ Statistic = SumStat
var _ Statistic = MeanStat
var _ Statistic = MaxStat
var _ Statistic = MedianStat

// SumStat is a [Statistic] that sums all scores. It returns 0 for empty
// input.
func SumStat(values []float64) float64 {
	return floats.Sum(values)
}

// MeanStat is a [Statistic] that averages all scores. It returns 0 for empty
// input.
func MeanStat(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return stat.Mean(values, nil)
}

// MaxStat is a [Statistic] that returns the largest score, or 0 for empty
// input.
func MaxStat(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return floats.Max(values)
}

// MedianStat is a [Statistic] that returns the median score: the middle
// element for odd counts, the mean of the two middle elements for even
// counts, and 0 for empty input. The input is not modified.
func MedianStat(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

// KthLargest returns a [Statistic] that selects the k-th largest score,
// 0-indexed, so KthLargest(0) is the maximum. When fewer than k+1 scores are
// present it returns 0, the empty extension. KthLargest panics if k is
// negative; [Landscape] validates the level before getting here.
func KthLargest(k int) Statistic {
	if k < 0 {
		panic(fmt.Sprintf("KthLargest(%d)", k))
	}
	return func(values []float64) float64 {
		if k >= len(values) {
			return 0
		}
		sorted := make([]float64, len(values))
		copy(sorted, values)
		sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))
		return sorted[k]
	}
}
