package verify

import (
	"testing"

	"github.com/katalvlaran/symfact/colcount"
	"github.com/katalvlaran/symfact/etree"
	"github.com/katalvlaran/symfact/fixtures"
	"github.com/katalvlaran/symfact/pattern"
	"github.com/katalvlaran/symfact/snpattern"
	"github.com/katalvlaran/symfact/supernode"
)

func TestCheckSucceedsOnSmallRandomPattern(t *testing.T) {
	rowsIn, ptrIn, err := fixtures.RandomSparse(20, fixtures.WithSeed(42), fixtures.WithDensity(0.2))
	if err != nil {
		t.Fatalf("fixture: %v", err)
	}
	c, err := pattern.NewCSC(rowsIn, ptrIn)
	if err != nil {
		t.Fatalf("NewCSC: %v", err)
	}
	tr := etree.Build(c)
	running := pattern.Identity(c.N)
	tr, err = etree.Rebuild(tr, c, &running)
	if err != nil {
		t.Fatalf("etree.Rebuild: %v", err)
	}
	cc := colcount.Count(c, tr)
	info := supernode.Detect(tr, c)
	merged := supernode.RelaxH1(info, cc, supernode.DefaultConfig())
	result, err := supernode.Rebuild(info, merged, cc, c, &running)
	if err != nil {
		t.Fatalf("supernode.Rebuild: %v", err)
	}
	sp := snpattern.Build(c, result.Info, result.Indices)

	report, err := Check(c, result.Info, sp, result.ArtificialNz, 99)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if report.Skipped {
		t.Fatal("report.Skipped = true for a small pattern")
	}
	if !report.OK {
		t.Fatalf("report not OK: wrongEntries=%d zerosFound=%d (want %d)", report.WrongEntries, report.ZerosFound, result.ArtificialNz)
	}
	if report.WrongEntries != 0 {
		t.Fatalf("WrongEntries = %d, want 0", report.WrongEntries)
	}
	if report.ZerosFound != result.ArtificialNz {
		t.Fatalf("ZerosFound = %d, want %d (ArtificialNz)", report.ZerosFound, result.ArtificialNz)
	}
}

func TestCheckSkipsLargePattern(t *testing.T) {
	rowsIn, ptrIn, err := fixtures.Path(maxDenseCheckDim + 1)
	if err != nil {
		t.Fatalf("fixture: %v", err)
	}
	c, err := pattern.NewCSC(rowsIn, ptrIn)
	if err != nil {
		t.Fatalf("NewCSC: %v", err)
	}

	report, err := Check(c, nil, nil, 0, 1)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if !report.Skipped {
		t.Fatal("report.Skipped = false for a pattern above maxDenseCheckDim")
	}
	if !report.OK {
		t.Fatal("report.OK = false on a skipped check")
	}
}
