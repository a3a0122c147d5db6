package ops

import (
	"fmt"
	"math"

	"github.com/katalvlaran/symfact/matrix"
)

// Cholesky performs dense Cholesky decomposition of a square, symmetric
// positive-definite matrix m, reading only its diagonal and lower triangle:
// A = L*L^T, returning the lower triangular factor L.
//
// Time Complexity: O(n^3), where n = m.Rows(); Memory: O(n^2) for L.
func Cholesky(m *matrix.Dense) (*matrix.Dense, error) {
	// Stage 1: Validate input is square.
	rows, cols := m.Rows(), m.Cols()
	if rows != cols {
		return nil, fmt.Errorf("Cholesky: non-square matrix %dx%d: %w", rows, cols, matrix.ErrMatrixDimensionMismatch)
	}
	n := rows

	// Stage 2: Prepare L.
	L, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("Cholesky: %w", err)
	}

	// Stage 3: Execute decomposition column by column.
	var (
		i, j, k    int
		sum        float64
		lVal, ljk  float64
		aVal, diag float64
	)
	for j = 0; j < n; j++ {
		// Diagonal entry.
		sum = 0
		for k = 0; k < j; k++ {
			ljk, _ = L.At(j, k)
			sum += ljk * ljk
		}
		aVal, _ = m.At(j, j)
		diag = aVal - sum
		if diag <= 0 {
			return nil, fmt.Errorf("Cholesky: pivot %d: %w", j, matrix.ErrNotPositiveDefinite)
		}
		diag = math.Sqrt(diag)
		_ = L.Set(j, j, diag)

		// Below-diagonal entries of column j.
		for i = j + 1; i < n; i++ {
			sum = 0
			for k = 0; k < j; k++ {
				lik, _ := L.At(i, k)
				ljk, _ = L.At(j, k)
				sum += lik * ljk
			}
			aVal, _ = m.At(i, j)
			lVal = (aVal - sum) / diag
			_ = L.Set(i, j, lVal)
		}
	}

	return L, nil
}
