package ops

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/symfact/matrix"
)

func buildSymmetric(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	n := len(rows)
	m, err := matrix.NewDense(n, n)
	if err != nil {
		t.Fatalf("NewDense: %v", err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if err := m.Set(i, j, rows[i][j]); err != nil {
				t.Fatalf("Set: %v", err)
			}
		}
	}
	return m
}

func TestCholeskyReconstructsIdentity(t *testing.T) {
	m := buildSymmetric(t, [][]float64{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	})
	L, err := Cholesky(m)
	if err != nil {
		t.Fatalf("Cholesky: %v", err)
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, _ := L.At(i, j)
			want := 0.0
			if i == j {
				want = 1.0
			}
			if v != want {
				t.Fatalf("L[%d][%d] = %v, want %v", i, j, v, want)
			}
		}
	}
}

func TestCholeskyReconstructsKnownMatrix(t *testing.T) {
	// A = [[4,12,-16],[12,37,-43],[-16,-43,98]] has the well-known
	// Cholesky factor L = [[2,0,0],[6,1,0],[-8,5,3]].
	a := buildSymmetric(t, [][]float64{
		{4, 12, -16},
		{12, 37, -43},
		{-16, -43, 98},
	})
	L, err := Cholesky(a)
	if err != nil {
		t.Fatalf("Cholesky: %v", err)
	}
	want := [][]float64{
		{2, 0, 0},
		{6, 1, 0},
		{-8, 5, 3},
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, _ := L.At(i, j)
			if math.Abs(v-want[i][j]) > 1e-9 {
				t.Fatalf("L[%d][%d] = %v, want %v", i, j, v, want[i][j])
			}
		}
	}
}

func TestCholeskyRejectsNonSquare(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	if err != nil {
		t.Fatalf("NewDense: %v", err)
	}
	if _, err := Cholesky(m); !errors.Is(err, matrix.ErrMatrixDimensionMismatch) {
		t.Fatalf("err = %v, want ErrMatrixDimensionMismatch", err)
	}
}

func TestCholeskyRejectsNonPositiveDefinite(t *testing.T) {
	m := buildSymmetric(t, [][]float64{
		{1, 2},
		{2, 1},
	})
	if _, err := Cholesky(m); !errors.Is(err, matrix.ErrNotPositiveDefinite) {
		t.Fatalf("err = %v, want ErrNotPositiveDefinite", err)
	}
}
