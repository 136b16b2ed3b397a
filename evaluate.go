package pcurve

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// PointFunc scores a single diagram point at mesh coordinate t. It receives
// the full diagram so that scores may depend on diagram-level quantities such
// as [Diagram.TotalLifetime]. It must be pure: curve evaluation may call it
// from multiple goroutines.
type PointFunc func(d *Diagram, birth, death, t float64) float64

// Statistic collapses the per-point scores at one mesh coordinate into a
// single curve value. By convention a Statistic returns 0 for empty input;
// all statistics in this package comply, and custom statistics that deviate
// do so deliberately.
type Statistic func(values []float64) float64

// EvaluateOnMesh samples a persistence curve over an inclusive mesh of n
// evenly spaced coordinates from start to stop. At each coordinate t it
// scores every diagram point with fn and reduces the scores with stat; the
// result has one value per mesh coordinate, in mesh order.
//
// The cost is O(n × d.Len()). Scores for all points at one coordinate are
// written into a single reused buffer, so evaluation does not allocate per
// point. The output is a pure function of its inputs.
//
// EvaluateOnMesh returns an error wrapping [ErrInvalidMesh] for an invalid
// mesh and [ErrInvalidParameter] for a nil fn or stat; validation happens
// before any scoring.
func EvaluateOnMesh(d *Diagram, fn PointFunc, stat Statistic, start, stop float64, n int) ([]float64, error) {
	mesh, err := evalMesh(d, fn, stat, start, stop, n)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(mesh))
	scratch := make([]float64, d.Len())
	for i, t := range mesh {
		out[i] = reduceAt(d, fn, stat, t, scratch)
	}
	return out, nil
}

// EvaluateOnMeshParallel is [EvaluateOnMesh] with the mesh loop split across
// workers goroutines. Each coordinate only reads the immutable diagram and
// writes its own output slot, so the result is identical to the sequential
// one. workers <= 0 means GOMAXPROCS.
func EvaluateOnMeshParallel(d *Diagram, fn PointFunc, stat Statistic, start, stop float64, n int, workers int) ([]float64, error) {
	mesh, err := evalMesh(d, fn, stat, start, stop, n)
	if err != nil {
		return nil, err
	}

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(mesh) {
		workers = len(mesh)
	}

	out := make([]float64, len(mesh))
	chunk := (len(mesh) + workers - 1) / workers
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := min(lo+chunk, len(mesh))
		if lo >= hi {
			break
		}
		g.Go(func() error {
			scratch := make([]float64, d.Len())
			for i := lo; i < hi; i++ {
				out[i] = reduceAt(d, fn, stat, mesh[i], scratch)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func evalMesh(d *Diagram, fn PointFunc, stat Statistic, start, stop float64, n int) ([]float64, error) {
	if d == nil {
		return nil, fmt.Errorf("nil diagram: %w", ErrInvalidParameter)
	}
	if fn == nil {
		return nil, fmt.Errorf("nil point function: %w", ErrInvalidParameter)
	}
	if stat == nil {
		return nil, fmt.Errorf("nil statistic: %w", ErrInvalidParameter)
	}
	return Mesh(start, stop, n)
}

func reduceAt(d *Diagram, fn PointFunc, stat Statistic, t float64, scratch []float64) float64 {
	for j := range d.births {
		scratch[j] = fn(d, d.births[j], d.deaths[j], t)
	}
	return stat(scratch)
}
