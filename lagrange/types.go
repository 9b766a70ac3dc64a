package lagrange

import (
	"errors"
	"math/bits"
)

// MaxSamples is the hard ceiling on the number of samples Fit accepts.
// Expand enumerates subsets of the n−1 "other" x values with a native
// machine-word bitmask, so the ceiling is the word width (64 on every
// mainstream platform, 32 on 32-bit targets). This is an architectural
// limit of the combinatorial expansion, not a tunable.
const MaxSamples = bits.UintSize

// Sentinel errors returned by the fitting and evaluation entry points.
var (
	// ErrTooFewSamples indicates fewer than two samples; interpolation
	// needs at least a line.
	ErrTooFewSamples = errors.New("lagrange: need at least 2 samples")

	// ErrTooManySamples indicates the sample count exceeds MaxSamples,
	// the width of the subset-enumeration bitmask.
	ErrTooManySamples = errors.New("lagrange: sample count exceeds bitmask width")

	// ErrDuplicateX indicates two samples share an x value exactly.
	// The Lagrange basis denominator for such a pair is zero; Fit
	// rejects the set instead of letting ±Inf/NaN propagate into the
	// coefficient vector.
	ErrDuplicateX = errors.New("lagrange: duplicate x value in sample set")

	// ErrNonFiniteSample indicates a NaN or ±Inf sample coordinate.
	ErrNonFiniteSample = errors.New("lagrange: sample coordinates must be finite")

	// ErrBadSteps indicates Grid was asked for fewer than one step.
	ErrBadSteps = errors.New("lagrange: steps must be >= 1")

	// ErrSingularSystem indicates the Vandermonde elimination hit a
	// zero pivot (degenerate sample set).
	ErrSingularSystem = errors.New("lagrange: singular Vandermonde system")
)

// Polynomial is the coefficient vector of a fitted polynomial in
// ascending power order: index i holds the coefficient of xⁱ. A fit
// over n samples always yields len == n (trailing coefficients may be
// zero when the data is of lower effective degree).
//
// Polynomial is a value; Fit returns a fresh vector on every call and
// never retains or aliases caller storage.
type Polynomial []float64

// Degree returns the nominal degree of the polynomial, len−1.
// Defined as −1 for an empty vector.
func (p Polynomial) Degree() int { return len(p) - 1 }
