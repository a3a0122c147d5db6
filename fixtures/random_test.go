package fixtures

import (
	"errors"
	"testing"

	"github.com/katalvlaran/symfact/pattern"
)

func TestRandomSparseDeterministicWithSameSeed(t *testing.T) {
	rows1, ptr1, err := RandomSparse(30, WithSeed(123), WithDensity(0.2))
	if err != nil {
		t.Fatalf("RandomSparse: %v", err)
	}
	rows2, ptr2, err := RandomSparse(30, WithSeed(123), WithDensity(0.2))
	if err != nil {
		t.Fatalf("RandomSparse: %v", err)
	}
	if len(rows1) != len(rows2) {
		t.Fatalf("lengths differ across identical seeds: %d vs %d", len(rows1), len(rows2))
	}
	for i := range rows1 {
		if rows1[i] != rows2[i] {
			t.Fatalf("rows differ at %d: %d vs %d", i, rows1[i], rows2[i])
		}
	}
	for i := range ptr1 {
		if ptr1[i] != ptr2[i] {
			t.Fatalf("ptr differs at %d: %d vs %d", i, ptr1[i], ptr2[i])
		}
	}
}

func TestRandomSparseDifferentSeedsDiverge(t *testing.T) {
	rows1, _, err := RandomSparse(40, WithSeed(1), WithDensity(0.3))
	if err != nil {
		t.Fatalf("RandomSparse: %v", err)
	}
	rows2, _, err := RandomSparse(40, WithSeed(2), WithDensity(0.3))
	if err != nil {
		t.Fatalf("RandomSparse: %v", err)
	}
	if len(rows1) == len(rows2) {
		same := true
		for i := range rows1 {
			if rows1[i] != rows2[i] {
				same = false
				break
			}
		}
		if same {
			t.Fatal("two different seeds produced an identical pattern")
		}
	}
}

func TestRandomSparseProducesValidCSC(t *testing.T) {
	rowsIn, ptrIn, err := RandomSparse(50, WithSeed(7), WithDensity(0.15))
	if err != nil {
		t.Fatalf("RandomSparse: %v", err)
	}
	if _, err := pattern.NewCSC(rowsIn, ptrIn); err != nil {
		t.Fatalf("NewCSC: %v", err)
	}
}

func TestRandomSparseRejectsTooFewVertices(t *testing.T) {
	if _, _, err := RandomSparse(1); !errors.Is(err, ErrTooFewVertices) {
		t.Fatalf("err = %v, want ErrTooFewVertices", err)
	}
}

func TestWithDensityIgnoresOutOfRangeValues(t *testing.T) {
	cfg := newConfig(WithDensity(1.5))
	if cfg.density != 0.1 {
		t.Fatalf("density = %v, want default 0.1 (1.5 is out of range)", cfg.density)
	}
	cfg = newConfig(WithDensity(0.5))
	if cfg.density != 0.5 {
		t.Fatalf("density = %v, want 0.5", cfg.density)
	}
}
