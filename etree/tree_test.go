package etree

import (
	"reflect"
	"testing"

	"github.com/katalvlaran/symfact/pattern"
)

// starCSC builds the 4-vertex star pattern used throughout this file: hub 0,
// spokes 1, 2, 3.
func starCSC(t *testing.T) *pattern.CSC {
	t.Helper()
	rowsIn := []int{0, 0, 1, 0, 2, 0, 3}
	ptrIn := []int{0, 1, 3, 5, 7}
	c, err := pattern.NewCSC(rowsIn, ptrIn)
	if err != nil {
		t.Fatalf("NewCSC: %v", err)
	}
	return c
}

func TestBuildStarProducesChain(t *testing.T) {
	c := starCSC(t)
	tr := Build(c)
	want := []int{1, 2, 3, -1}
	if !reflect.DeepEqual(tr.Parent, want) {
		t.Fatalf("Parent = %v, want %v", tr.Parent, want)
	}
}

func TestBuildParentAlwaysExceedsChild(t *testing.T) {
	// Build's incremental-ancestor walk only ever assigns parent[i] = the
	// enclosing column index j, and j only ever exceeds rows i < j it
	// processes, so this must hold for any valid upper-triangular pattern.
	c := starCSC(t)
	tr := Build(c)
	for i, p := range tr.Parent {
		if p != -1 && p <= i {
			t.Fatalf("Parent[%d] = %d, want -1 or > %d", i, p, i)
		}
	}
}

func TestChildrenLinkedListOnChain(t *testing.T) {
	parent := []int{1, 2, 3, -1}
	head, next := ChildrenLinkedList(parent)
	for p, wantChild := range []int{-1, 0, 1, 2} {
		if head[p] != wantChild {
			t.Fatalf("head[%d] = %d, want %d", p, head[p], wantChild)
		}
	}
	for i := 0; i < 3; i++ {
		if next[i] != -1 {
			t.Fatalf("next[%d] = %d, want -1 (single child per node)", i, next[i])
		}
	}
}

func TestSubtreeSizeOnChain(t *testing.T) {
	parent := []int{1, 2, 3, -1}
	size := SubtreeSize(parent)
	want := []int{1, 2, 3, 4}
	if !reflect.DeepEqual(size, want) {
		t.Fatalf("SubtreeSize = %v, want %v", size, want)
	}
}
