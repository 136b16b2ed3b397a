package pcurve

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatisticsEmptyInput(t *testing.T) {
	for name, stat := range map[string]Statistic{
		"sum":        SumStat,
		"mean":       MeanStat,
		"max":        MaxStat,
		"median":     MedianStat,
		"kthlargest": KthLargest(0),
	} {
		if got := stat(nil); got != 0 {
			t.Errorf("%s(nil) = %v, want 0", name, got)
		}
		if got := stat([]float64{}); got != 0 {
			t.Errorf("%s([]) = %v, want 0", name, got)
		}
	}
}

func TestSumMeanMax(t *testing.T) {
	values := []float64{3, -1, 4, 0}
	diff(t, 6.0, SumStat(values))
	diff(t, 1.5, MeanStat(values))
	diff(t, 4.0, MaxStat(values))
}

func TestMedian(t *testing.T) {
	diff(t, 2.0, MedianStat([]float64{3, 1, 2}))
	diff(t, 2.5, MedianStat([]float64{4, 1, 2, 3}))
	diff(t, 7.0, MedianStat([]float64{7}))

	// The input must not be reordered.
	values := []float64{3, 1, 2}
	MedianStat(values)
	diff(t, []float64{3, 1, 2}, values)
}

func TestKthLargest(t *testing.T) {
	values := []float64{3, 1, 2}
	diff(t, 3.0, KthLargest(0)(values))
	diff(t, 2.0, KthLargest(1)(values))
	diff(t, 1.0, KthLargest(2)(values))
	// Out of range extends with 0.
	diff(t, 0.0, KthLargest(3)(values))
	diff(t, []float64{3, 1, 2}, values)

	require.Panics(t, func() { KthLargest(-1) })
}
