package quad

import (
	"math"

	"github.com/katalvlaran/tiquad/lagrange"
	"github.com/katalvlaran/tiquad/sample"
)

// Analytic integrates the fitted polynomial p over the domain spanned
// by set, using the x of the first and last sample by insertion order
// as [lower, upper]. Callers wanting true min/max bounds must order
// their samples accordingly (see package doc).
//
// Errors: ErrEmptySamples when set is empty.
//
// Complexity: O(len(p)).
func Analytic(p lagrange.Polynomial, set sample.Set) (float64, error) {
	lower, upper, ok := set.Bounds()
	if !ok {
		return 0, ErrEmptySamples
	}

	return AnalyticBounds(p, lower, upper), nil
}

// AnalyticBounds evaluates the definite integral of p over
// [lower, upper] exactly, term by term:
//
//	∫ p = Σᵢ p[i] · (upper^(i+1) − lower^(i+1)) / (i+1)
//
// Exact for the polynomial itself; the accuracy of the free-energy
// estimate is inherited from the fit.
//
// Complexity: O(len(p)).
func AnalyticBounds(p lagrange.Polynomial, lower, upper float64) float64 {
	area := 0.0
	for i, c := range p {
		power := float64(i + 1)
		area += c * (math.Pow(upper, power) - math.Pow(lower, power)) / power
	}

	return area
}

// Trapezoid integrates the raw samples by the trapezoidal rule,
// walking consecutive pairs in insertion order:
//
//	Σ 0.5 · (y_b + y_a) · (x_b − x_a)
//
// The fitted polynomial is not consulted. A single sample spans no
// interval and yields zero area; an empty set is an error rather than
// a silent zero.
//
// Complexity: O(len(set)).
func Trapezoid(set sample.Set) (float64, error) {
	if len(set) == 0 {
		return 0, ErrEmptySamples
	}

	area := 0.0
	for i := 1; i < len(set); i++ {
		a, b := set[i-1], set[i]
		area += 0.5 * (b.Y + a.Y) * (b.X - a.X)
	}

	return area, nil
}
