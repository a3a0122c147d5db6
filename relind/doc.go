// Package relind computes the relative-index tables that let the numeric
// factorization scatter updates directly into frontal matrices without
// searching: for each original column, its offset within its supernode's
// frontal matrix, and for each supernode, where its clique rows land
// within its parent's frontal matrix.
//
// ConsecutiveSums additionally run-length-encodes the clique relative
// indices so the numeric phase can coalesce contiguous runs into single
// BLAS-3 calls instead of one scatter per row.
package relind
