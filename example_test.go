package pcurve_test

import (
	"fmt"
	"math"

	"github.com/gotopo/pcurve"
)

func ExampleBetti() {
	diagram, err := pcurve.NewDiagram([][]float64{
		{0, 2},
		{1, 3},
		{5, 6},
	})
	if err != nil {
		panic(err)
	}

	betti, err := pcurve.Betti().Eval(diagram, 0, 6, 7)
	if err != nil {
		panic(err)
	}
	fmt.Println(betti)
	// Output: [1 2 1 0 0 1 0]
}

func ExampleNewDiagramWithOptions() {
	// Persistence computations commonly report essential features with an
	// infinite death. With a known intensity ceiling, PolicyReplace clamps
	// them to it.
	ceiling := 255.0
	diagram, err := pcurve.NewDiagramWithOptions([][]float64{
		{0, math.Inf(1)},
		{10, 80},
	}, pcurve.DiagramOptions{
		Policy:         pcurve.PolicyReplace,
		GlobalMaxDeath: &ceiling,
	})
	if err != nil {
		panic(err)
	}
	fmt.Println(diagram.Deaths())
	// Output: [255 80]
}

func ExampleCurve() {
	// A custom curve: the mean midpoint distance of all generators, reduced
	// with the median statistic.
	diagram, err := pcurve.NewDiagram([][]float64{
		{0, 4},
		{2, 6},
	})
	if err != nil {
		panic(err)
	}

	custom := pcurve.Curve{
		PointFn: func(_ *pcurve.Diagram, birth, death, t float64) float64 {
			return math.Abs(t - (birth+death)/2)
		},
		Stat: pcurve.MedianStat,
	}

	values, err := custom.Eval(diagram, 0, 6, 4)
	if err != nil {
		panic(err)
	}
	fmt.Println(values)
	// Output: [3 1 1 3]
}
