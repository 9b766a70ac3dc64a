// Package sample ingests (x, y) observation pairs for interpolation
// and quadrature, typically (λ, dG/dλ) rows from a thermodynamic
// integration run.
//
// A Set preserves insertion order exactly as given by the caller; it is
// never sorted internally. Downstream consumers (lagrange.Fit,
// quad.Analytic) depend on that order, both for deterministic
// floating-point results and for the first/last integration bounds.
//
// Ingestion paths:
//
//   - FromPairs / FromSlices — programmatic construction; both copy the
//     caller's data, so later mutation of the inputs cannot alias a Set.
//   - ParseReader / ParseFile — delimited text: one pair per line,
//     fields split on whitespace, ',' or ';', lines starting with '#'
//     skipped, floats parsed locale-independently (strconv).
//
// The package validates shape only (two parsable fields per row).
// Numeric preconditions of the fit — distinct x values, finite values,
// the sample-count ceiling — are enforced by lagrange.Fit, which is the
// point where they become load-bearing.
package sample
