package supernode

import (
	"testing"

	"github.com/katalvlaran/symfact/colcount"
	"github.com/katalvlaran/symfact/pattern"
)

func TestRebuildShrinksCountByMergeCount(t *testing.T) {
	rowsIn, ptrIn := mustRandom(t, 50, 13, 0.12)
	c, tr := postordered(t, rowsIn, ptrIn)
	cc := colcount.Count(c, tr)
	info := Detect(tr, c)
	m := RelaxH1(info, cc, DefaultConfig())

	running := pattern.Identity(c.N)
	result, err := Rebuild(info, m, cc, c, &running)
	if err != nil {
		t.Fatalf("Rebuild: %v", err)
	}

	if result.Info.Count != info.Count-m.Count {
		t.Fatalf("new Count = %d, want %d", result.Info.Count, info.Count-m.Count)
	}
	if len(result.Indices) != result.Info.Count {
		t.Fatalf("len(Indices) = %d, want %d", len(result.Indices), result.Info.Count)
	}
	if err := pattern.Validate(running.Perm, c.N); err != nil {
		t.Fatalf("running.Perm invalid after Rebuild: %v", err)
	}
	for s := 0; s < result.Info.Count; s++ {
		if p := result.Info.Parent[s]; p != -1 && p <= s {
			t.Fatalf("new Parent[%d] = %d, want -1 or > %d", s, p, s)
		}
	}
}

func TestRebuildNoMergesIsNoOp(t *testing.T) {
	rowsIn, ptrIn := mustRandom(t, 20, 5, 0.15)
	c, tr := postordered(t, rowsIn, ptrIn)
	cc := colcount.Count(c, tr)
	info := Detect(tr, c)

	empty := &Merged{MergedInto: make([]int, info.Count), FakeNonzeros: make([]int, info.Count), Count: 0}
	for i := range empty.MergedInto {
		empty.MergedInto[i] = -1
	}

	running := pattern.Identity(c.N)
	result, err := Rebuild(info, empty, cc, c, &running)
	if err != nil {
		t.Fatalf("Rebuild: %v", err)
	}
	if result.Info.Count != info.Count {
		t.Fatalf("Count changed on a no-op relaxation: %d -> %d", info.Count, result.Info.Count)
	}
	if result.ArtificialNz != 0 {
		t.Fatalf("ArtificialNz = %d, want 0 on a no-op relaxation", result.ArtificialNz)
	}
}
