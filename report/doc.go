// Package report renders fit results for humans and downstream tools.
//
// The numeric packages (lagrange, quad) are pure; every printing side
// effect lives here instead, as an explicit writer the caller owns:
//
//   - Polynomial — "Degree, Coefficients" table of the fitted vector
//   - Estimates  — the free-energy block, both strategies, 8 decimals
//   - PlotCSV    — "x(4dp), estimate(8dp)" rows for external plotting
//   - Chart      — self-contained HTML page (go-echarts) overlaying
//     the raw samples on the fitted curve
//
// All writers return the first I/O error they hit; none of them aborts
// the process, so a failed plot file never discards an already-printed
// report.
package report
