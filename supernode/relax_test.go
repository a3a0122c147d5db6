package supernode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/symfact/colcount"
	"github.com/katalvlaran/symfact/fixtures"
)

func buildInfoAndCounts(t *testing.T, rowsIn, ptrIn []int) (*Info, []int) {
	t.Helper()
	c, tr := postordered(t, rowsIn, ptrIn)
	cc := colcount.Count(c, tr)
	info := Detect(tr, c)
	return info, cc
}

func assertMergedWellFormed(t *testing.T, info *Info, m *Merged) {
	t.Helper()
	count := 0
	for sn, into := range m.MergedInto {
		if into == -1 {
			continue
		}
		count++
		assert.Greater(t, into, sn, "merges only flow toward the larger-index parent")
		assert.Less(t, into, info.Count, "MergedInto[%d] = %d out of range", sn, into)
	}
	assert.Equal(t, m.Count, count, "m.Count disagrees with the number of merged entries")
	if info.Count > 0 {
		assert.Less(t, m.Count, info.Count, "merges must leave a root supernode")
	}
}

func TestRelaxH1WellFormed(t *testing.T) {
	rowsIn, ptrIn := mustRandom(t, 40, 9, 0.1)
	info, cc := buildInfoAndCounts(t, rowsIn, ptrIn)
	m := RelaxH1(info, cc, DefaultConfig())
	assertMergedWellFormed(t, info, m)
}

func TestRelaxH2WellFormed(t *testing.T) {
	rowsIn, ptrIn := mustRandom(t, 40, 9, 0.1)
	info, cc := buildInfoAndCounts(t, rowsIn, ptrIn)
	m := RelaxH2(info, cc, DefaultConfig())
	assertMergedWellFormed(t, info, m)
}

func TestRelaxH3WellFormed(t *testing.T) {
	rowsIn, ptrIn := mustRandom(t, 40, 9, 0.1)
	info, cc := buildInfoAndCounts(t, rowsIn, ptrIn)
	m := RelaxH3(info, cc, DefaultConfig())
	assertMergedWellFormed(t, info, m)
}

func TestRelaxH1ZeroCapMergesOnlyWithoutFakeNonzeros(t *testing.T) {
	rowsIn, ptrIn := mustRandom(t, 30, 4, 0.12)
	info, cc := buildInfoAndCounts(t, rowsIn, ptrIn)
	snSize, clique := cliqueSizes(info, cc)
	cfg := DefaultConfig()
	cfg.MaxArtificialNz = 0
	cfg.SmallSnThresh = 0 // also disable the secondary small-supernode rule
	m := RelaxH1(info, cc, cfg)
	// A zero cap still admits a merge that adds no explicit zeros: one whose
	// child's clique spans all of its parent's columns and clique.
	for child, sn := range m.MergedInto {
		if sn != -1 {
			assert.Equal(t, snSize[sn]+clique[sn], clique[child], "merging %d into %d adds fake nonzeros", child, sn)
		}
	}
	for s, fz := range m.FakeNonzeros {
		assert.Equal(t, 0, fz, "supernode %d carries fake nonzeros under a zero cap", s)
	}
}

func TestRelaxH1CompleteGraphStaysOneSupernode(t *testing.T) {
	// A single fundamental supernode has no children to merge.
	rowsIn, ptrIn, err := fixtures.Complete(10)
	require.NoError(t, err)
	info, cc := buildInfoAndCounts(t, rowsIn, ptrIn)
	m := RelaxH1(info, cc, DefaultConfig())
	assert.Equal(t, 0, m.Count, "nothing to merge")
}

func mustRandom(t *testing.T, n int, seed int64, density float64) (rowsIn, ptrIn []int) {
	t.Helper()
	rowsIn, ptrIn, err := fixtures.RandomSparse(n, fixtures.WithSeed(seed), fixtures.WithDensity(density))
	require.NoError(t, err)
	return rowsIn, ptrIn
}
