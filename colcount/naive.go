package colcount

import (
	"github.com/katalvlaran/symfact/etree"
	"github.com/katalvlaran/symfact/pattern"
)

// Naive recomputes column counts by walking, for each row, every ancestor of
// every nonzero column in that row up to the point it was already marked.
// Quadratic in the worst case; kept only as a test oracle for Count.
func Naive(c *pattern.CSC, t *etree.Tree) []int {
	n := c.N
	parent := t.Parent
	colcount := make([]int, n)
	mark := make([]int, n)
	for i := range mark {
		mark[i] = -1
	}

	for i := 0; i < n; i++ {
		mark[i] = i
		colcount[i]++

		for e := c.PtrU[i]; e < c.PtrU[i+1]; e++ {
			j := c.RowsU[e]
			if j == i {
				continue
			}
			for mark[j] != i {
				mark[j] = i
				colcount[j]++
				j = parent[j]
			}
		}
	}

	return colcount
}
