package analyse

import "github.com/katalvlaran/symfact/verify"

// Symbolic is the immutable result of a completed analysis: everything the
// numeric factorization phase needs, and nothing it would need to recompute.
type Symbolic struct {
	N      int     // matrix dimension
	NZ     float64 // nonzeros of the factor, including artificial fill
	Fillin float64 // NZ / original nonzero count

	SnCount      int
	ArtificialNz int     // explicit zero entries introduced by supernode relaxation
	ArtificialOp float64 // extra flops relaxation costs over no relaxation
	AssemblyOp   float64 // scalar update operations performed during numeric assembly
	LargestFront int     // largest number of row indices in any supernode's frontal matrix
	LargestSn    int     // largest number of columns in any supernode
	Operations   float64 // total flop count of the factorization

	Perm  []int // Perm[k] = original index placed at position k
	Iperm []int // Iperm[i] = position of original index i

	// Supernodal pattern: SnRows[SnPtr[s]:SnPtr[s+1]] are the row indices
	// touched by supernode s's frontal matrix, sorted ascending.
	SnPtr  []int
	SnRows []int

	SnParent []int // supernodal elimination tree, -1 for roots
	SnStart  []int // SnStart[s]..SnStart[s+1]-1 are the columns of supernode s

	RelindCols      []int   // per lower-triangle entry, offset within its supernode's frontal matrix
	RelindClique    [][]int // per supernode, offsets of its clique rows within its parent's frontal matrix
	ConsecutiveSums [][]int // run-length encoding of RelindClique, for BLAS-3 coalescing

	// DebugReport is non-nil only when Config.DebugCheck was set; it holds
	// the outcome of the dense cross-check.
	DebugReport *verify.Report
}
