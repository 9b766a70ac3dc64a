// Package quad estimates the definite integral of thermodynamic
// integration data by two independent, stateless strategies:
//
//   - Analytic — exact integral of the fitted Lagrange polynomial,
//     Σᵢ p[i]·(upper^(i+1) − lower^(i+1))/(i+1). Exact for the fit;
//     only as good as the fit itself.
//   - Trapezoid — classic trapezoidal quadrature walking the raw
//     samples pairwise, ignoring the fit entirely.
//
// The two estimates agree only in the limit of many well-behaved
// points. Their divergence is the point: reporting both lets a user
// judge the quality of the interpolation against a model-free
// baseline, so callers should not expect (or enforce) equality.
//
// Integration bounds come from the first and last sample by insertion
// order, not from min/max. Reversing the sample order negates the
// analytic integral exactly as it would on paper.
//
// Both strategies are pure functions of their inputs; reporting lives
// in package report.
package quad
