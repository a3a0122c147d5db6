package order

import "github.com/katalvlaran/symfact/pattern"

// adjacency is a plain CSR neighbour list over n vertices, excluding
// self-loops, suitable for graph traversal during ordering.
type adjacency struct {
	ptr  []int
	rows []int
}

// buildAdjacency mirrors c's upper triangle into a full symmetric adjacency
// list via two counting passes (count degree per vertex, then scatter),
// skipping diagonal entries, the same two-pass shape used throughout the
// pattern package for permutation and transpose.
func buildAdjacency(c *pattern.CSC) *adjacency {
	n := c.N
	degree := make([]int, n)
	for j := 0; j < n; j++ {
		for e := c.PtrU[j]; e < c.PtrU[j+1]; e++ {
			i := c.RowsU[e]
			if i == j {
				continue
			}
			degree[j]++
			degree[i]++
		}
	}

	ptr := make([]int, n+1)
	for i := 0; i < n; i++ {
		ptr[i+1] = ptr[i] + degree[i]
	}

	cursor := make([]int, n)
	copy(cursor, ptr[:n])
	rows := make([]int, ptr[n])

	for j := 0; j < n; j++ {
		for e := c.PtrU[j]; e < c.PtrU[j+1]; e++ {
			i := c.RowsU[e]
			if i == j {
				continue
			}
			rows[cursor[j]] = i
			cursor[j]++
			rows[cursor[i]] = j
			cursor[i]++
		}
	}

	return &adjacency{ptr: ptr, rows: rows}
}

func (a *adjacency) neighbors(v int) []int {
	return a.rows[a.ptr[v]:a.ptr[v+1]]
}
