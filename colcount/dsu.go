package colcount

// dsu is a path-compressed disjoint-set forest over node indices 0..n-1,
// adapted from the union-find used for cycle detection in minimum spanning
// tree construction: here it tracks, for each node visited so far, which
// ancestor "absorbs" further least-common-ancestor queries, rather than
// connectivity components. No union-by-rank is needed because union only
// ever attaches a node to its immediate elimination-tree parent, which
// already bounds path length in amortised terms once compression kicks in.
type dsu struct {
	ancestor []int
}

func newDSU(n int) *dsu {
	a := make([]int, n)
	for i := range a {
		a[i] = i
	}
	return &dsu{ancestor: a}
}

// find returns the root of i's set, compressing the path traversed.
func (d *dsu) find(i int) int {
	root := i
	for d.ancestor[root] != root {
		root = d.ancestor[root]
	}
	for i != root {
		next := d.ancestor[i]
		d.ancestor[i] = root
		i = next
	}
	return root
}

// union attaches the set containing child directly under parentSet (which
// must already be a root); used once per node when moving to its elimination
// tree parent, so ancestor keeps shrinking path lengths for later finds.
func (d *dsu) union(child, parentSet int) {
	d.ancestor[child] = parentSet
}
