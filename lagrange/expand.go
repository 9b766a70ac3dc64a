package lagrange

import "math/bits"

// Expand computes the monomial coefficients of the product
//
//	Π_{j=0}^{n-1} (t − xs[j])
//
// returned in descending power order: out[0] is the leading coefficient
// (always 1), out[n] the constant term. Equivalently out[k] is the
// k-th elementary symmetric function of the negated inputs, so
//
//	Expand(nil)  == [1]
//	Expand([a])  == [1, −a]
//	Expand([a,b])== [1, −(a+b), a·b]
//
// Algorithm: enumerate every subset of xs with a machine-word bitmask.
// Subset m contributes the product of −xs[j] over its set bits to the
// slot indexed by popcount(m) — grouping terms by how many linear
// factors donated their constant instead of their t.
//
// Requires len(xs) < bits.UintSize so the 2ⁿ subset count fits the
// mask; otherwise ErrTooManySamples. Pure function, no side effects.
//
// Complexity: O(n·2ⁿ) time, O(n) space.
func Expand(xs []float64) ([]float64, error) {
	n := uint(len(xs))
	if n >= bits.UintSize {
		return nil, ErrTooManySamples
	}

	out := make([]float64, n+1)
	total := uint(1) << n

	var (
		m    uint    // subset mask
		j    uint    // factor index within the mask
		unit float64 // product contributed by the current subset
	)
	for m = 0; m < total; m++ {
		unit = 1.0
		for j = 0; j < n; j++ {
			if m&(1<<j) != 0 {
				unit *= -xs[j] // factor j donates −xⱼ instead of t
			}
		}
		out[bits.OnesCount(m)] += unit
	}

	return out, nil
}
