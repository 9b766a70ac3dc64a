package report

import (
	"fmt"
	"io"
	"iter"

	"github.com/katalvlaran/tiquad/lagrange"
)

// Polynomial writes the fitted coefficient vector to w as the classic
// two-column table, one row per degree:
//
//	Degree, Coefficients
//	     0, 1.00000000
//	     1, 0.00000000
//	     2, 1.00000000
func Polynomial(w io.Writer, p lagrange.Polynomial) error {
	if _, err := fmt.Fprintln(w, "Degree, Coefficients"); err != nil {
		return fmt.Errorf("report: polynomial: %w", err)
	}
	for i, c := range p {
		if _, err := fmt.Fprintf(w, "%6d, %.8f\n", i, c); err != nil {
			return fmt.Errorf("report: polynomial: %w", err)
		}
	}

	return nil
}

// Estimates writes both free-energy estimates with 8 decimal digits.
// The two values are expected to differ for coarse or noisy data; see
// the quad package doc.
func Estimates(w io.Writer, lagrangeArea, trapezoidArea float64) error {
	_, err := fmt.Fprintf(w, "\nFree energy difference\n Lagrange: %.8f\nTrapezoid: %.8f\n",
		lagrangeArea, trapezoidArea)
	if err != nil {
		return fmt.Errorf("report: estimates: %w", err)
	}

	return nil
}

// PlotCSV writes one "x(4dp), estimate(8dp)" row per point of seq,
// typically a lagrange.Polynomial.Grid sequence. Truncation policy is
// the caller's: pass a freshly created (os.Create) file to overwrite a
// previous plot.
func PlotCSV(w io.Writer, seq iter.Seq2[float64, float64]) error {
	for x, y := range seq {
		if _, err := fmt.Fprintf(w, "%.4f, %.8f\n", x, y); err != nil {
			return fmt.Errorf("report: plot: %w", err)
		}
	}

	return nil
}
