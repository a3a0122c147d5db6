package etree

import (
	"github.com/katalvlaran/symfact/pattern"
)

// Tree is an elimination forest: Parent[i] is the parent of node i, or -1
// if i is a root. After Postorder has run on the owning CSC, Parent[i] > i
// for every non-root i.
type Tree struct {
	Parent []int
}

// Build computes the elimination tree of an upper-triangular pattern using
// the standard path-compressed algorithm (Tim Davis's formulation): for
// each column j in increasing order, walk each lower row i < j up through
// the partially-known tree (the ancestor array), compressing the path to j
// as it goes, and set parent[i] = j the first time the walk reaches an
// unassigned (-1) ancestor.
//
// Correct only when c's upper triangle is sorted ascending within each
// column, which pattern.CSC guarantees.
//
// Complexity: O(NZU * alpha(N)) via path compression.
func Build(c *pattern.CSC) *Tree {
	n := c.N
	parent := make([]int, n)
	ancestor := make([]int, n)
	for i := range parent {
		parent[i] = -1
		ancestor[i] = -1
	}

	for j := 0; j < n; j++ {
		for e := c.PtrU[j]; e < c.PtrU[j+1]; e++ {
			i := c.RowsU[e]
			for i != -1 && i < j {
				next := ancestor[i]
				ancestor[i] = j // path compression: j is now known reachable from i
				if next == -1 {
					parent[i] = j
				}
				i = next
			}
		}
	}

	return &Tree{Parent: parent}
}

// ChildrenLinkedList builds a head/next index-array representation of the
// children of each node in parent: head[p] is the first child of p (or -1),
// next[c] is c's next sibling (or -1). Children are linked in the order
// their owning node appears, i.e. ascending index, which keeps downstream
// traversals deterministic.
//
// Complexity: O(n) time and space.
func ChildrenLinkedList(parent []int) (head, next []int) {
	n := len(parent)
	head = make([]int, n)
	next = make([]int, n)
	for i := range head {
		head[i] = -1
		next[i] = -1
	}
	for i := n - 1; i >= 0; i-- {
		p := parent[i]
		if p == -1 {
			continue
		}
		next[i] = head[p]
		head[p] = i
	}
	return head, next
}

// SubtreeSize computes, for a postordered tree (parent[i] == -1 or
// parent[i] > i), the number of nodes in the subtree rooted at each i.
// Because every child has a strictly smaller index than its parent in a
// postordered tree, a single ascending pass suffices: each node's own size
// is finalised before it contributes to its parent's.
//
// Complexity: O(n).
func SubtreeSize(parent []int) []int {
	n := len(parent)
	size := make([]int, n)
	for i := range size {
		size[i] = 1
	}
	for i := 0; i < n; i++ {
		if p := parent[i]; p != -1 {
			size[p] += size[i]
		}
	}
	return size
}
