package pcurve

import (
	"fmt"
	"math"
)

// InfinityPolicy controls what happens to points whose death equals the
// infinite-death sentinel when a [Diagram] is constructed.
type InfinityPolicy int

const (
	// PolicyKeep retains infinite-death points verbatim. Their contribution
	// to curve statistics must be finite-safe or is allowed to diverge; that
	// is the caller's responsibility.
	PolicyKeep InfinityPolicy = iota
	// PolicyReplace rewrites every infinite death: to the global max death
	// if one was supplied, otherwise to the maximum finite death present in
	// the diagram.
	PolicyReplace
	// PolicyRemove drops every infinite-death point from the diagram.
	PolicyRemove
)

func (p InfinityPolicy) String() string {
	switch p {
	case PolicyKeep:
		return "keep"
	case PolicyReplace:
		return "replace"
	case PolicyRemove:
		return "remove"
	default:
		return fmt.Sprintf("InfinityPolicy(%d)", int(p))
	}
}

// DiagramOptions configures the construction of a [Diagram]. The zero value
// keeps infinite deaths, uses positive infinity as the sentinel, and carries
// no global max death.
type DiagramOptions struct {
	// GlobalMaxDeath, if non-nil, is the value [PolicyReplace] substitutes
	// for infinite deaths, typically a known ceiling of the filtration such
	// as the maximum image intensity. It is stored verbatim whether or not
	// the policy uses it.
	GlobalMaxDeath *float64
	// InfiniteDeath is the sentinel that marks a death as infinite. If zero,
	// math.Inf(1) is used.
	InfiniteDeath float64
	// Policy selects how infinite deaths are handled. The default is
	// [PolicyKeep].
	Policy InfinityPolicy
}

// Diagram is a persistence diagram: a finite multiset of (birth, death)
// pairs, with the configured [InfinityPolicy] already applied. It is
// immutable after construction and can be shared freely across concurrent
// curve evaluations.
//
// The order of points carries no meaning but is preserved from the input, so
// outputs are reproducible for a fixed input order.
type Diagram struct {
	births []float64
	deaths []float64

	globalMaxDeath option[float64]
	infiniteDeath  float64
	totalLifetime  float64
}

// NewDiagram constructs a Diagram from a raw n×2 array with default options:
// infinite deaths are kept, the sentinel is positive infinity, and no global
// max death is recorded.
func NewDiagram(points [][]float64) (*Diagram, error) {
	return NewDiagramWithOptions(points, DiagramOptions{})
}

// NewDiagramWithOptions constructs a Diagram from a raw n×2 array, applying
// opts.Policy exactly once. It returns an error wrapping [ErrShape] if any
// row does not have exactly two columns, and an error wrapping
// [ErrUndefinedReplacement] if the policy is [PolicyReplace] but the diagram
// has no finite death and opts.GlobalMaxDeath is nil.
func NewDiagramWithOptions(points [][]float64, opts DiagramOptions) (*Diagram, error) {
	for i, row := range points {
		if len(row) != 2 {
			return nil, fmt.Errorf("row %d has %d columns: %w", i, len(row), ErrShape)
		}
	}

	inf := opts.InfiniteDeath
	if inf == 0 {
		inf = math.Inf(1)
	}

	d := &Diagram{
		births:        make([]float64, 0, len(points)),
		deaths:        make([]float64, 0, len(points)),
		infiniteDeath: inf,
	}
	if opts.GlobalMaxDeath != nil {
		d.globalMaxDeath.set(*opts.GlobalMaxDeath)
	}

	switch opts.Policy {
	case PolicyKeep:
		for _, row := range points {
			d.births = append(d.births, row[0])
			d.deaths = append(d.deaths, row[1])
		}
	case PolicyRemove:
		for _, row := range points {
			if row[1] == inf {
				continue
			}
			d.births = append(d.births, row[0])
			d.deaths = append(d.deaths, row[1])
		}
	case PolicyReplace:
		repl, ok := d.globalMaxDeath.get()
		if !ok {
			repl, ok = maxFiniteDeath(points, inf)
			if !ok {
				return nil, fmt.Errorf("replace policy: %w", ErrUndefinedReplacement)
			}
		}
		for _, row := range points {
			death := row[1]
			if death == inf {
				death = repl
			}
			d.births = append(d.births, row[0])
			d.deaths = append(d.deaths, death)
		}
	default:
		return nil, fmt.Errorf("infinity policy %d: %w", int(opts.Policy), ErrInvalidParameter)
	}

	for i := range d.births {
		d.totalLifetime += d.deaths[i] - d.births[i]
	}
	return d, nil
}

func maxFiniteDeath(points [][]float64, inf float64) (float64, bool) {
	best := math.Inf(-1)
	found := false
	for _, row := range points {
		death := row[1]
		if death == inf || math.IsInf(death, 0) || math.IsNaN(death) {
			continue
		}
		if death > best {
			best = death
			found = true
		}
	}
	return best, found
}

// Len returns the number of points in the diagram.
func (d *Diagram) Len() int {
	return len(d.births)
}

// Shape returns the dimensions of the post-policy diagram, (Len, 2).
func (d *Diagram) Shape() (rows, cols int) {
	return len(d.births), 2
}

// Births returns a copy of all birth values, in diagram order.
func (d *Diagram) Births() []float64 {
	out := make([]float64, len(d.births))
	copy(out, d.births)
	return out
}

// Deaths returns a copy of all death values, in diagram order.
func (d *Diagram) Deaths() []float64 {
	out := make([]float64, len(d.deaths))
	copy(out, d.deaths)
	return out
}

// Points returns a copy of the post-policy diagram as an n×2 array, suitable
// for plotting or further processing.
func (d *Diagram) Points() [][2]float64 {
	out := make([][2]float64, len(d.births))
	for i := range out {
		out[i] = [2]float64{d.births[i], d.deaths[i]}
	}
	return out
}

// Lifetimes returns a copy of death−birth for every point, in diagram order.
func (d *Diagram) Lifetimes() []float64 {
	out := make([]float64, len(d.births))
	for i := range out {
		out[i] = d.deaths[i] - d.births[i]
	}
	return out
}

// TotalLifetime returns the sum of all lifetimes in the diagram. It is
// computed once at construction.
func (d *Diagram) TotalLifetime() float64 {
	return d.totalLifetime
}

// GlobalMaxDeath returns the global max death supplied at construction. The
// second return value reports whether one was supplied.
func (d *Diagram) GlobalMaxDeath() (float64, bool) {
	return d.globalMaxDeath.get()
}
