package pcurve

import "errors"

// Errors reported by diagram construction and curve evaluation. All of them
// are detected eagerly, before any work is done, and can be matched with
// [errors.Is].
var (
	// ErrShape reports a raw diagram whose rows do not have exactly two
	// columns.
	ErrShape = errors.New("diagram rows must have exactly two columns")

	// ErrUndefinedReplacement reports a [PolicyReplace] diagram that has no
	// finite death value and no global max death to replace infinities with.
	ErrUndefinedReplacement = errors.New("no replacement value for infinite deaths")

	// ErrInvalidMesh reports a mesh with a non-positive point count or
	// inverted bounds.
	ErrInvalidMesh = errors.New("invalid mesh")

	// ErrInvalidParameter reports an out-of-range curve parameter, such as a
	// negative landscape level or a non-positive bandwidth.
	ErrInvalidParameter = errors.New("invalid parameter")
)
