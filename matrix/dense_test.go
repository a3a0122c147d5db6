package matrix

import (
	"errors"
	"testing"
)

func TestNewDenseZeroed(t *testing.T) {
	m, err := NewDense(2, 3)
	if err != nil {
		t.Fatalf("NewDense: %v", err)
	}
	if m.Rows() != 2 || m.Cols() != 3 {
		t.Fatalf("Rows/Cols = %d/%d, want 2/3", m.Rows(), m.Cols())
	}
	for r := 0; r < 2; r++ {
		for c := 0; c < 3; c++ {
			v, err := m.At(r, c)
			if err != nil {
				t.Fatalf("At(%d,%d): %v", r, c, err)
			}
			if v != 0 {
				t.Fatalf("At(%d,%d) = %v, want 0", r, c, v)
			}
		}
	}
}

func TestNewDenseRejectsNegativeDims(t *testing.T) {
	if _, err := NewDense(-1, 3); !errors.Is(err, ErrMatrixDimensionMismatch) {
		t.Fatalf("err = %v, want ErrMatrixDimensionMismatch", err)
	}
}

func TestSetThenAt(t *testing.T) {
	m, err := NewDense(3, 3)
	if err != nil {
		t.Fatalf("NewDense: %v", err)
	}
	if err := m.Set(1, 2, 4.5); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, err := m.At(1, 2)
	if err != nil {
		t.Fatalf("At: %v", err)
	}
	if v != 4.5 {
		t.Fatalf("At(1,2) = %v, want 4.5", v)
	}
}

func TestAtOutOfRange(t *testing.T) {
	m, err := NewDense(2, 2)
	if err != nil {
		t.Fatalf("NewDense: %v", err)
	}
	if _, err := m.At(2, 0); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("err = %v, want ErrIndexOutOfRange", err)
	}
	if _, err := m.At(0, -1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("err = %v, want ErrIndexOutOfRange", err)
	}
}

func TestSetOutOfRange(t *testing.T) {
	m, err := NewDense(2, 2)
	if err != nil {
		t.Fatalf("NewDense: %v", err)
	}
	if err := m.Set(5, 0, 1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("err = %v, want ErrIndexOutOfRange", err)
	}
}
