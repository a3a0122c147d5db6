package relind

import (
	"github.com/katalvlaran/symfact/snpattern"
	"github.com/katalvlaran/symfact/supernode"
)

// Clique computes, for every supernode with a parent, the offsets within
// the parent's frontal matrix at which the supernode's own clique rows
// land, plus a run-length encoding of those offsets (ConsecutiveSums) that
// lets the numeric phase detect runs of contiguous rows it can update with
// a single BLAS-3 call instead of a row-by-row scatter.
//
// AssemblyOps accumulates the number of scalar update operations the
// assembly step will perform across every supernode, a quantity tracked
// purely for cost reporting in the symbolic result.
type Clique struct {
	RelInd          [][]int
	ConsecutiveSums [][]int
	AssemblyOps     float64
}

// Build computes the clique relative-index tables for every supernode in
// info, given its frontal pattern sp.
func Build(info *supernode.Info, sp *snpattern.Pattern) *Clique {
	relInd := make([][]int, info.Count)
	sums := make([][]int, info.Count)
	var assemblyOps float64

	for sn := 0; sn < info.Count; sn++ {
		if info.Parent[sn] == -1 {
			continue
		}

		snSize := info.Start[sn+1] - info.Start[sn]
		snColumnSize := sp.Ptr[sn+1] - sp.Ptr[sn]
		cliqueSize := snColumnSize - snSize

		assemblyOps += float64(cliqueSize*(cliqueSize+1)) / 2

		ri := make([]int, cliqueSize)

		ptrCurrent := sp.Ptr[sn] + snSize
		parent := info.Parent[sn]
		ptrParentStart := sp.Ptr[parent]
		ptrParentEnd := sp.Ptr[parent+1]
		ptrParent := ptrParentStart

		index := 0
		for ptrParent < ptrParentEnd && index < cliqueSize {
			if sp.Rows[ptrCurrent] == sp.Rows[ptrParent] {
				ri[index] = ptrParent - ptrParentStart
				index++
				ptrParent++
				ptrCurrent++
			} else {
				ptrParent++
			}
		}

		relInd[sn] = ri
		sums[sn] = consecutiveSums(ri)
	}

	return &Clique{RelInd: relInd, ConsecutiveSums: sums, AssemblyOps: assemblyOps}
}

// consecutiveSums encodes, for each position i in ri, the number of
// further consecutive entries (ri[i], ri[i+1], ...) that increase by
// exactly one each step: a run of k consecutive indices starting at i
// yields consecutiveSums[i] == k, counting down to 1 at the end of the run.
// Only a chain of differences equal to 1 extends a run; any other
// difference (the last entry, or a gap) resets to 1.
func consecutiveSums(ri []int) []int {
	k := len(ri)
	if k == 0 {
		return nil
	}
	sums := make([]int, k)
	sums[k-1] = 1
	for i := k - 2; i >= 0; i-- {
		diff := ri[i+1] - ri[i]
		if diff == 1 {
			sums[i] = sums[i+1] + 1
		} else {
			sums[i] = 1
		}
	}
	return sums
}
