package lagrange

import (
	"math"

	"github.com/katalvlaran/tiquad/sample"
)

// FitVandermonde computes the same interpolating polynomial as Fit by
// solving the dense Vandermonde system V·c = y, where V[i][j] = xᵢʲ,
// with Gaussian elimination under partial pivoting.
//
// It exists as an independent cross-check of the combinatorial
// expansion and as an escape hatch for sets larger than MaxSamples:
// the elimination is O(n³), not O(2ⁿ), and carries no bitmask ceiling.
// For large or clustered x the Vandermonde matrix is notoriously
// ill-conditioned, so agreement with Fit degrades with n; both paths
// share the same float64 precision boundary.
//
// Validation matches Fit except for the sample-count ceiling
// (ErrTooFewSamples, ErrNonFiniteSample, ErrDuplicateX). A zero pivot
// after row exchange yields ErrSingularSystem.
//
// Complexity: O(n³) time, O(n²) space.
func FitVandermonde(set sample.Set) (Polynomial, error) {
	n := len(set)
	if err := validateVandermonde(set); err != nil {
		return nil, err
	}

	// Stage 1: build the augmented matrix [V | y] row by row.
	aug := make([][]float64, n)
	for i := 0; i < n; i++ {
		row := make([]float64, n+1)
		pow := 1.0
		for j := 0; j < n; j++ {
			row[j] = pow
			pow *= set[i].X
		}
		row[n] = set[i].Y
		aug[i] = row
	}

	// Stage 2: forward elimination with partial pivoting.
	var (
		col, r, k int
		pivot     int
		factor    float64
	)
	for col = 0; col < n; col++ {
		pivot = col
		for r = col + 1; r < n; r++ {
			if math.Abs(aug[r][col]) > math.Abs(aug[pivot][col]) {
				pivot = r
			}
		}
		if aug[pivot][col] == 0 {
			return nil, ErrSingularSystem
		}
		aug[col], aug[pivot] = aug[pivot], aug[col]

		for r = col + 1; r < n; r++ {
			factor = aug[r][col] / aug[col][col]
			if factor == 0 {
				continue
			}
			for k = col; k <= n; k++ {
				aug[r][k] -= factor * aug[col][k]
			}
		}
	}

	// Stage 3: back substitution into ascending-order coefficients.
	p := make(Polynomial, n)
	for r = n - 1; r >= 0; r-- {
		sum := aug[r][n]
		for k = r + 1; k < n; k++ {
			sum -= aug[r][k] * p[k]
		}
		p[r] = sum / aug[r][r]
	}

	return p, nil
}

// validateVandermonde mirrors validateSet minus the MaxSamples ceiling,
// which does not apply to the elimination path.
func validateVandermonde(set sample.Set) error {
	n := len(set)
	if n < 2 {
		return ErrTooFewSamples
	}

	var i, j int
	for i = 0; i < n; i++ {
		if !isFinite(set[i].X) || !isFinite(set[i].Y) {
			return ErrNonFiniteSample
		}
		for j = i + 1; j < n; j++ {
			if set[i].X == set[j].X {
				return ErrDuplicateX
			}
		}
	}

	return nil
}
