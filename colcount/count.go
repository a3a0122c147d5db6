package colcount

import (
	"github.com/katalvlaran/symfact/etree"
	"github.com/katalvlaran/symfact/pattern"
)

// Count computes the Cholesky column counts of c (already postordered, with
// elimination tree t) via the skeleton-matrix algorithm.
//
// Complexity: O(NZU * alpha(N)).
func Count(c *pattern.CSC, t *etree.Tree) []int {
	n := c.N
	parent := t.Parent

	first := make([]int, n)
	for i := range first {
		first[i] = -1
	}

	colcount := make([]int, n)

	// First descendant: the smallest-index node in each subtree, found by a
	// single ascending sweep since children precede parents in postorder.
	for k := 0; k < n; k++ {
		j := k
		if first[j] == -1 {
			colcount[j] = 1
		}
		for j != -1 && first[j] == -1 {
			first[j] = k
			j = parent[j]
		}
	}

	maxfirst := make([]int, n)
	prevleaf := make([]int, n)
	for i := range maxfirst {
		maxfirst[i] = -1
		prevleaf[i] = -1
	}

	d := newDSU(n)

	for j := 0; j < n; j++ {
		if parent[j] != -1 {
			colcount[parent[j]]--
		}
		for e := c.PtrL[j]; e < c.PtrL[j+1]; e++ {
			processEdge(j, c.RowsL[e], first, maxfirst, colcount, prevleaf, d)
		}
		if parent[j] != -1 {
			d.union(j, parent[j])
		}
	}

	for j := 0; j < n; j++ {
		if parent[j] != -1 {
			colcount[parent[j]] += colcount[j]
		}
	}

	return colcount
}

// processEdge handles matrix edge (i, j) with i a row below column j in the
// lower-triangle view: it detects whether this edge is the first ("leaf") or
// a repeat visit to node i's subtree for column j, crediting the nonzero to
// j or to the least common ancestor of the two visits accordingly.
//
// Grounded on Tim Davis's cs_leaf: a node i is a leaf for column j exactly
// when no earlier column has a smaller first-descendant reaching below i
// than j does; repeat visits are folded into the LCA via the disjoint set.
func processEdge(j, i int, first, maxfirst, colcount, prevleaf []int, d *dsu) {
	if i <= j || first[j] <= maxfirst[i] {
		return
	}
	maxfirst[i] = first[j]
	k := prevleaf[i]
	prevleaf[i] = j
	if k == -1 {
		colcount[j]++
		return
	}
	q := d.find(k)
	colcount[j]++
	colcount[q]--
}
