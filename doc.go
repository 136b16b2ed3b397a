// Package pcurve converts persistence diagrams into persistence curves:
// scalar functions sampled over a 1-D mesh, used as fixed-length numeric
// summaries of topological data for downstream statistics or learning. It
// follows the persistence-curve framework of [Chung and Lawson].
//
// The package does not compute persistent homology. It consumes diagrams
// already in hand, as n×2 arrays of (birth, death) pairs produced by an
// upstream library, and it does not plot anything.
//
// # Diagrams
//
// [Diagram] owns a cleaned birth/death dataset. Construction applies an
// [InfinityPolicy] exactly once, deciding whether points with infinite death
// are kept, replaced by a finite ceiling, or removed; after that the diagram
// is immutable and may be shared freely across goroutines. See
// [DiagramOptions] for the construction parameters and their defaults.
//
// # The generic evaluator
//
// All curves are produced by one algorithm, [EvaluateOnMesh]. It walks an
// inclusive mesh of evenly spaced coordinates; at each coordinate t it scores
// every diagram point with a [PointFunc] and collapses the scores with a
// [Statistic]. A statistic invoked on zero points returns 0 by convention.
// [EvaluateOnMeshParallel] splits the mesh loop across goroutines; because
// each coordinate only reads the immutable diagram, it returns the same
// values as the sequential evaluator.
//
// # Named curves
//
// The named curves are plain (point function, statistic) pairs routed
// through the generic evaluator, not separate algorithms:
//
//   - [Betti]: the number of generators alive at t
//   - [Life]: the summed lifetime of generators alive at t
//   - [Midlife]: the summed lifetime of generators whose midpoint has passed t
//   - [NormalizedLife]: [Life] scaled by the diagram's total lifetime
//   - [Entropy]: the Shannon entropy of the alive lifetime distribution at t
//   - [Landscape]: the k-th largest tent height at t
//   - [GaussianBetti], [GaussianLife]: Gaussian-smoothed variants
//
// A fully custom curve is a [Curve] literal with caller-supplied point
// function and statistic.
//
// [Chung and Lawson]: https://arxiv.org/abs/1904.07768
package pcurve
