package pcurve

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Curve pairs a [PointFunc] with a [Statistic]. Every named curve in this
// package is a Curve value; none of them carries its own evaluation
// algorithm. Construct a Curve directly to evaluate a fully custom curve.
type Curve struct {
	PointFn PointFunc
	Stat    Statistic
}

// Eval samples the curve over an inclusive mesh of n evenly spaced
// coordinates from start to stop. See [EvaluateOnMesh].
func (c Curve) Eval(d *Diagram, start, stop float64, n int) ([]float64, error) {
	return EvaluateOnMesh(d, c.PointFn, c.Stat, start, stop, n)
}

// EvalParallel is [Curve.Eval] with the mesh loop split across workers
// goroutines. See [EvaluateOnMeshParallel].
func (c Curve) EvalParallel(d *Diagram, start, stop float64, n int, workers int) ([]float64, error) {
	return EvaluateOnMeshParallel(d, c.PointFn, c.Stat, start, stop, n, workers)
}

func aliveAt(birth, death, t float64) bool {
	return birth <= t && t < death
}

// Betti returns the Betti curve: at each t, the number of generators alive
// at t, that is with birth ≤ t < death.
func Betti() Curve {
	return Curve{
		PointFn: func(_ *Diagram, birth, death, t float64) float64 {
			if aliveAt(birth, death, t) {
				return 1
			}
			return 0
		},
		Stat: SumStat,
	}
}

// Life returns the life curve: at each t, the sum of lifetimes of the
// generators alive at t.
func Life() Curve {
	return Curve{
		PointFn: func(_ *Diagram, birth, death, t float64) float64 {
			if aliveAt(birth, death, t) {
				return death - birth
			}
			return 0
		},
		Stat: SumStat,
	}
}

// Midlife returns the midlife curve: at each t, the sum of lifetimes of the
// generators whose midpoint (birth+death)/2 lies at or below t.
func Midlife() Curve {
	return Curve{
		PointFn: func(_ *Diagram, birth, death, t float64) float64 {
			if (birth+death)/2 <= t {
				return death - birth
			}
			return 0
		},
		Stat: SumStat,
	}
}

// NormalizedLife returns the life curve divided by the diagram's total
// lifetime. When the total lifetime is 0 the curve is identically 0.
func NormalizedLife() Curve {
	return Curve{
		PointFn: func(d *Diagram, birth, death, t float64) float64 {
			total := d.TotalLifetime()
			if total == 0 || !aliveAt(birth, death, t) {
				return 0
			}
			return (death - birth) / total
		},
		Stat: SumStat,
	}
}

// Entropy returns the persistent-entropy curve: at each t, with L the total
// lifetime of the generators alive at t, each alive lifetime ℓ contributes
// −(ℓ/L)·ln(ℓ/L). The curve is 0 wherever no generator is alive.
func Entropy() Curve {
	return Curve{
		PointFn: func(_ *Diagram, birth, death, t float64) float64 {
			if aliveAt(birth, death, t) {
				return death - birth
			}
			return 0
		},
		Stat: entropyStat,
	}
}

// entropyStat reduces alive lifetimes to their Shannon entropy. Scores of 0
// mark dead generators and contribute nothing.
func entropyStat(values []float64) float64 {
	total := floats.Sum(values)
	if total <= 0 {
		return 0
	}
	var h float64
	for _, l := range values {
		if l <= 0 {
			continue
		}
		p := l / total
		h -= p * math.Log(p)
	}
	return h
}

// Landscape returns the persistence landscape at level k, 0-indexed: at each
// t, the k-th largest tent height max(0, min(t−birth, death−t)) over all
// generators, or 0 when fewer than k+1 generators are present. Landscape
// returns an error wrapping [ErrInvalidParameter] if k is negative.
func Landscape(k int) (Curve, error) {
	if k < 0 {
		return Curve{}, fmt.Errorf("landscape level %d: %w", k, ErrInvalidParameter)
	}
	return Curve{
		PointFn: func(_ *Diagram, birth, death, t float64) float64 {
			return tent(birth, death, t)
		},
		Stat: KthLargest(k),
	}, nil
}

func tent(birth, death, t float64) float64 {
	return max(0, min(t-birth, death-t))
}

// GaussianBetti returns the Betti curve with the hard alive indicator
// replaced by its convolution with a centered normal of standard deviation
// bandwidth, for smoothing. As bandwidth approaches 0 the curve approaches
// [Betti]. GaussianBetti returns an error wrapping [ErrInvalidParameter] if
// bandwidth is not positive.
func GaussianBetti(bandwidth float64) (Curve, error) {
	if bandwidth <= 0 {
		return Curve{}, fmt.Errorf("bandwidth %g: %w", bandwidth, ErrInvalidParameter)
	}
	return Curve{
		PointFn: func(_ *Diagram, birth, death, t float64) float64 {
			return smoothedIndicator(birth, death, t, bandwidth)
		},
		Stat: SumStat,
	}, nil
}

// GaussianLife is [GaussianBetti] with each generator's contribution scaled
// by its lifetime, the smoothed counterpart of [Life].
func GaussianLife(bandwidth float64) (Curve, error) {
	if bandwidth <= 0 {
		return Curve{}, fmt.Errorf("bandwidth %g: %w", bandwidth, ErrInvalidParameter)
	}
	return Curve{
		PointFn: func(_ *Diagram, birth, death, t float64) float64 {
			return (death - birth) * smoothedIndicator(birth, death, t, bandwidth)
		},
		Stat: SumStat,
	}, nil
}

// smoothedIndicator is the indicator of [birth, death) convolved with
// N(0, h²): Φ((t−birth)/h) − Φ((t−death)/h).
func smoothedIndicator(birth, death, t, h float64) float64 {
	return normCDF((t-birth)/h) - normCDF((t-death)/h)
}

func normCDF(x float64) float64 {
	return 0.5 * (1 + math.Erf(x/math.Sqrt2))
}

// Presets returns the parameterless named curves, keyed by name. Presets
// carrying a parameter, [Landscape], [GaussianBetti] and [GaussianLife],
// remain constructors.
func Presets() map[string]Curve {
	return map[string]Curve{
		"betti":          Betti(),
		"life":           Life(),
		"midlife":        Midlife(),
		"normalizedlife": NormalizedLife(),
		"entropy":        Entropy(),
	}
}
