package lagrange

import "iter"

// At evaluates the polynomial at x using Horner's scheme.
// Equivalent to Σᵢ p[i]·xⁱ with fewer roundings and no pow calls.
//
// Complexity: O(len(p)).
func (p Polynomial) At(x float64) float64 {
	y := 0.0
	for i := len(p) - 1; i >= 0; i-- {
		y = y*x + p[i]
	}

	return y
}

// Grid returns a lazy, finite, restartable sequence of steps+1
// evaluations of p at x = 0, 1/steps, 2/steps, …, 1 — the fixed unit
// domain of a thermodynamic-integration coupling parameter. Callers
// whose data lives on a different domain must rescale before fitting.
//
// The sequence yields (x, p.At(x)) pairs and may be ranged over any
// number of times; no state persists between iterations.
//
// Errors: ErrBadSteps when steps < 1.
//
// Complexity: O(steps · len(p)) per full iteration, O(1) space.
func (p Polynomial) Grid(steps int) (iter.Seq2[float64, float64], error) {
	if steps < 1 {
		return nil, ErrBadSteps
	}

	return func(yield func(float64, float64) bool) {
		for s := 0; s <= steps; s++ {
			// Division, not an accumulated step: s/steps lands exactly
			// on 1.0 at the final point for every steps value.
			x := float64(s) / float64(steps)
			if !yield(x, p.At(x)) {
				return
			}
		}
	}, nil
}
