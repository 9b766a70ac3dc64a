// Package tiquad estimates free-energy differences from
// thermodynamic-integration data by fitting a Lagrange interpolating
// polynomial through sampled (λ, dG/dλ) points and integrating it.
//
// 🚀 What is tiquad?
//
//	A small, deterministic library plus CLI that brings together:
//		• Sample ingestion: delimited text rows of (x, y) pairs
//		• Lagrange fitting: exact coefficients of the unique
//		  interpolating polynomial, via bitmask elementary-symmetric
//		  expansion
//		• Integration: analytic integral of the fitted polynomial and
//		  an independent trapezoidal quadrature over the raw samples
//		• Evaluation: lazy grid sampling of the fit over [0, 1]
//		• Reporting: coefficient tables, estimate summaries, CSV plot
//		  rows and interactive HTML charts
//
// ✨ Why choose tiquad?
//
//   - Deterministic — fixed operation order, bit-identical refits
//   - Explicit errors — degenerate or oversized inputs fail fast with
//     sentinel errors, never as silent NaN coefficients
//   - Pure Go — no cgo; the numeric core performs no I/O
//
// Everything is organized under four subpackages and a CLI:
//
//	sample/   — Sample, Set, delimited-text parsing
//	lagrange/ — Expand, Fit, FitVandermonde, Polynomial evaluation
//	quad/     — analytic and trapezoidal integration
//	report/   — tables, CSV plot rows, HTML charts
//	cmd/      — the tiquad command-line driver
//
// Quick sketch:
//
//	set, _ := sample.ParseFile("dgdl.dat")
//	p, err := lagrange.Fit(set)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(quad.Analytic(p, set)) // free-energy estimate
//
//	go get github.com/katalvlaran/tiquad
package tiquad
