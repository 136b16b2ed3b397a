package pcurve

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func mustDiagram(t *testing.T, points [][]float64) *Diagram {
	t.Helper()
	d, err := NewDiagram(points)
	if err != nil {
		t.Fatal(err)
	}
	return d
}
