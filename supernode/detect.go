package supernode

import (
	"github.com/katalvlaran/symfact/etree"
	"github.com/katalvlaran/symfact/pattern"
)

// Detect partitions the postordered columns of c into fundamental
// supernodes: a new supernode starts at column j whenever j is a leaf of
// its subtree with no earlier row contribution reaching as far back as the
// subtree demands, or whenever some child i of the tree has a sibling (its
// subtree size does not account for the whole of its parent's subtree minus
// one), which marks the parent as starting a new supernode.
//
// Grounded on the subtree-leaf and branching tests from the reference
// fundamental-supernode detection: a supernode boundary is exactly a node
// that is either a genuine leaf-pattern break or the meeting point of two
// or more children.
func Detect(t *etree.Tree, c *pattern.CSC) *Info {
	n := c.N
	parent := t.Parent
	isStart := make([]bool, n)
	prevNonz := make([]int, n)
	for i := range prevNonz {
		prevNonz[i] = -1
	}
	subtreeSize := etree.SubtreeSize(parent)

	for j := 0; j < n; j++ {
		for e := c.PtrL[j]; e < c.PtrL[j+1]; e++ {
			i := c.RowsL[e]
			k := prevNonz[i]

			if k < j-subtreeSize[j]+1 {
				isStart[j] = true
			}

			if p := parent[i]; p != -1 && subtreeSize[i]+1 != subtreeSize[p] {
				isStart[p] = true
			}

			prevNonz[i] = j
		}
	}

	belong := make([]int, n)
	snNumber := -1
	for i := 0; i < n; i++ {
		if isStart[i] {
			snNumber++
		}
		belong[i] = snNumber
	}
	count := snNumber + 1

	start := make([]int, count+1)
	next := 0
	for i := 0; i < n; i++ {
		if isStart[i] {
			start[next] = i
			next++
		}
	}
	start[count] = n

	snParent := make([]int, count)
	for s := 0; s < count-1; s++ {
		j := parent[start[s+1]-1]
		if j != -1 {
			snParent[s] = belong[j]
		} else {
			snParent[s] = -1
		}
	}
	snParent[count-1] = -1

	return &Info{Belong: belong, Start: start, Parent: snParent, Count: count}
}
