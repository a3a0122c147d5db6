// Package colcount computes, for each column of a postordered elimination
// tree, the number of nonzeros the Cholesky factor will have in that
// column, without ever forming the factor.
//
// Count uses the skeleton-matrix algorithm (Tim Davis, "Direct Methods for
// Sparse Linear Systems", section 4.3): a single ascending sweep over the
// tree resolves, for every matrix edge, whether it contributes a "leaf"
// nonzero and which least-common-ancestor set absorbs the duplicate
// contribution, tracked via a path-compressed disjoint-set forest (dsu.go).
// This runs in close to O(NZU * alpha(N)).
//
// Naive provides the quadratic row-by-row definition directly from the
// elimination-tree path-walk, used only as a correctness oracle in tests.
package colcount
