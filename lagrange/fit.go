package lagrange

import (
	"github.com/katalvlaran/tiquad/sample"
)

// Fit computes the coefficient vector of the unique degree-(n−1)
// polynomial passing through every sample of set (n = len(set)).
//
// Per sample i it forms the Lagrange basis weight
//
//	Cᵢ = yᵢ / Πⱼ≠ᵢ (xᵢ − xⱼ)
//
// expands the basis numerator Πⱼ≠ᵢ (t − xⱼ) with Expand, and
// accumulates Cᵢ-weighted coefficients into a running vector. The
// accumulator is in descending power order (Expand's convention) and is
// reversed exactly once, at the end, into the ascending-order
// Polynomial.
//
// The operation order is fixed by sample order, so refitting the same
// set yields bit-identical coefficients. The input is only read, never
// retained.
//
// Errors: ErrTooFewSamples (n < 2), ErrTooManySamples (n > MaxSamples),
// ErrNonFiniteSample, ErrDuplicateX — all detected up front; no
// partially valid vector is ever returned.
//
// Complexity: O(n·2ⁿ) time (subset expansion dominates), O(n) space.
func Fit(set sample.Set) (Polynomial, error) {
	n := len(set)
	if err := validateSet(set); err != nil {
		return nil, err
	}

	acc := make([]float64, n) // descending-order accumulator
	others := make([]float64, 0, n-1)

	for i := 0; i < n; i++ {
		denom := 1.0
		others = others[:0]
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			denom *= set[i].X - set[j].X
			others = append(others, set[j].X)
		}
		weight := set[i].Y / denom // finite: duplicates rejected above

		terms, err := Expand(others)
		if err != nil {
			return nil, err
		}
		for k, t := range terms {
			acc[k] += weight * t
		}
	}

	// Flip once: accumulation ran leading-first, Polynomial is
	// constant-first.
	p := make(Polynomial, n)
	for k := 0; k < n; k++ {
		p[k] = acc[n-1-k]
	}

	return p, nil
}
