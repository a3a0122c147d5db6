package supernode

// Info describes a partition of the n columns of an elimination tree into
// supernodes: contiguous runs of columns collapsed into a single dense
// block for factorization.
type Info struct {
	Belong []int // Belong[i] is the supernode index column i belongs to, length n
	Start  []int // Start[s]..Start[s+1]-1 are the columns of supernode s, length Count+1
	Parent []int // Parent[s] is the supernodal elimination tree parent of s, -1 if root
	Count  int
}

// Size returns the number of columns in supernode s.
func (info *Info) Size(s int) int {
	return info.Start[s+1] - info.Start[s]
}

// Merged is the outcome of one relaxation pass: for each fundamental
// supernode s, MergedInto[s] is the supernode it was folded into, or -1 if
// s survives as a merge root. FakeNonzeros[s] is the number of explicit
// zero entries the merges at root s introduced; Rebuild sums it over the
// surviving supernodes into Result.ArtificialNz.
type Merged struct {
	MergedInto   []int
	FakeNonzeros []int
	Count        int // number of merges performed
}
