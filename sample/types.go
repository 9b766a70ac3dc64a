package sample

import "errors"

// Sentinel errors returned by the parsing layer.
var (
	// ErrBadRow indicates a non-comment line with fewer than the two
	// delimited fields (x, y) a data row requires.
	ErrBadRow = errors.New("sample: row must contain two fields (x, y)")

	// ErrBadField indicates a field that could not be parsed as a
	// floating-point number. Wrapped around the strconv error.
	ErrBadField = errors.New("sample: field is not a number")

	// ErrLengthMismatch indicates FromSlices inputs of different lengths.
	ErrLengthMismatch = errors.New("sample: x and y slices differ in length")
)

// Sample is one observed point: y = f(x). Immutable once loaded.
//
// In the thermodynamic-integration setting X is the coupling parameter
// λ ∈ [0, 1] and Y is the sampled dG/dλ value.
type Sample struct {
	X float64
	Y float64
}

// Set is an ordered sequence of samples, in caller-supplied order.
// The zero value is an empty, ready-to-append Set.
type Set []Sample
