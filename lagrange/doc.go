// Package lagrange constructs the unique interpolating polynomial
// through a sample.Set and evaluates it.
//
// 🚀 What is Lagrange interpolation?
//
//	Given n points with distinct x values there is exactly one
//	polynomial of degree ≤ n−1 passing through all of them. Lagrange's
//	form writes it as a weighted sum of basis polynomials
//
//	    L(t) = Σᵢ yᵢ · Πⱼ≠ᵢ (t − xⱼ) / (xᵢ − xⱼ)
//
//	Fit expands every numerator product into explicit monomial
//	coefficients and accumulates the weighted contributions into a
//	single ascending-power coefficient vector (Polynomial).
//
// Algorithm outline (Fit):
//  1. Validate: n ≥ 2, n ≤ MaxSamples, finite values, distinct x.
//  2. Per sample i: denominator Dᵢ = Πⱼ≠ᵢ (xᵢ − xⱼ), weight Cᵢ = yᵢ/Dᵢ.
//  3. Expand Πⱼ≠ᵢ (t − xⱼ) by enumerating all subsets of the excluded
//     x values with a bitmask; each subset contributes the product of
//     its negated members to the slot indexed by its popcount.
//  4. Accumulate Cᵢ · expansion into a running vector, then reverse it
//     once into ascending power order.
//
// Complexity: the subset enumeration is O(n·2ⁿ) time — the hard
// resource ceiling of the method. The mask is a native machine word, so
// n is capped at MaxSamples (fail-fast ErrTooManySamples, never a
// silent overflow).
//
// Numeric boundary: expansion terms are products of up to n−1 sample
// magnitudes. For many, large, or tightly clustered x values these
// products can overflow or lose precision in float64; no guard is
// provided beyond the documented contract.
//
// FitVandermonde solves the same problem as a dense linear system with
// partially pivoted Gaussian elimination — an O(n³) cross-check that is
// not subject to the mask ceiling.
//
// Errors (sentinel): ErrTooFewSamples, ErrTooManySamples, ErrDuplicateX,
// ErrNonFiniteSample, ErrBadSteps, ErrSingularSystem.
package lagrange
