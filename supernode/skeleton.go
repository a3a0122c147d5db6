package supernode

import "github.com/katalvlaran/symfact/etree"

// cliqueSizes returns, for each fundamental supernode, its column count and
// the size of its clique (the rows below its diagonal block), derived from
// the column counts produced by the colcount package.
func cliqueSizes(info *Info, colcount []int) (snSize, clique []int) {
	snSize = make([]int, info.Count)
	clique = make([]int, info.Count)
	for s := 0; s < info.Count; s++ {
		snSize[s] = info.Size(s)
		clique[s] = colcount[info.Start[s]] - snSize[s]
	}
	return snSize, clique
}

// unlinkChild removes child from sn's children list in place, used by every
// relaxation heuristic once it has committed to merging child into sn.
func unlinkChild(firstChild, nextChild []int, sn, child int) {
	c := firstChild[sn]
	if c == child {
		firstChild[sn] = nextChild[child]
		return
	}
	for nextChild[c] != child {
		c = nextChild[c]
	}
	nextChild[c] = nextChild[child]
}

// artificialNz computes how many explicit zero entries the supernode formed
// by merging child into sn would hold in total: the zeros this merge adds,
// given their current (possibly already-grown) sizes, plus the fake
// nonzeros both already carry.
func artificialNz(snSize, clique []int, sn, child int, fakeNz []int) int {
	rowsFilled := snSize[sn] + clique[sn] - clique[child]
	nzAdded := rowsFilled * snSize[child]
	return nzAdded + fakeNz[sn] + fakeNz[child]
}

// childLists builds the children linked list of the supernodal elimination
// tree, reusing the same head/next representation etree uses for the
// node-level tree.
func childLists(snParent []int) (firstChild, nextChild []int) {
	return etree.ChildrenLinkedList(snParent)
}
