package snpattern

import (
	"github.com/katalvlaran/symfact/pattern"
	"github.com/katalvlaran/symfact/supernode"
)

// Pattern is the compressed row pattern of the supernodal factor: for
// supernode s, Rows[Ptr[s]:Ptr[s+1]] are the original row indices its
// frontal matrix spans, sorted ascending.
type Pattern struct {
	Ptr  []int
	Rows []int
}

// Build constructs the supernodal pattern from c's upper triangle and the
// relaxed supernode partition info, using the per-supernode index counts
// computed during relaxation.
//
// Complexity: O(NZU * height of the supernodal tree) in the worst case,
// O(NZU) in practice since the per-row mark array prunes repeated subtree
// walks.
func Build(c *pattern.CSC, info *supernode.Info, indices []int) *Pattern {
	total := 0
	for _, k := range indices {
		total += k
	}

	ptr := make([]int, info.Count+1)
	for s, k := range indices {
		ptr[s+1] = ptr[s] + k
	}

	work := make([]int, info.Count)
	copy(work, ptr[:info.Count])

	rows := make([]int, total)
	mark := make([]int, info.Count)
	for i := range mark {
		mark[i] = -1
	}

	for i := 0; i < c.N; i++ {
		for e := c.PtrU[i]; e < c.PtrU[i+1]; e++ {
			j := c.RowsU[e]
			snj := info.Belong[j]

			for snj != -1 && mark[snj] != i {
				if info.Start[snj] > i {
					break
				}
				mark[snj] = i
				rows[work[snj]] = i
				work[snj]++
				snj = info.Parent[snj]
			}
		}
	}

	return &Pattern{Ptr: ptr, Rows: rows}
}
