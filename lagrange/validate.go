// Package lagrange - input validation shared by both fit strategies.
//
// Design principles (matching the rest of the library):
//   - Deterministic, side-effect free checks.
//   - No logging, no panics on user input - only sentinel errors from
//     types.go.
//   - Everything is verified before the first coefficient is computed,
//     so a failed fit never yields a partially valid vector.
package lagrange

import (
	"math"

	"github.com/katalvlaran/tiquad/sample"
)

// validateSet enforces the numeric preconditions of a Lagrange fit:
// 2 ≤ n ≤ MaxSamples, all coordinates finite, all x values pairwise
// distinct (exact comparison: only exact duplicates make a basis
// denominator exactly zero; near-duplicates merely yield huge
// coefficients, which is the documented precision boundary).
//
// Complexity: O(n²) time - negligible next to the O(2ⁿ) expansion and
// bounded by MaxSamples anyway.
func validateSet(set sample.Set) error {
	n := len(set)
	if n < 2 {
		return ErrTooFewSamples
	}
	if n > MaxSamples {
		return ErrTooManySamples
	}

	var i, j int
	for i = 0; i < n; i++ {
		if !isFinite(set[i].X) || !isFinite(set[i].Y) {
			return ErrNonFiniteSample
		}
		for j = i + 1; j < n; j++ {
			if set[i].X == set[j].X {
				return ErrDuplicateX
			}
		}
	}

	return nil
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
