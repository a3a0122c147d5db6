// Package supernode groups consecutive columns of the elimination tree that
// share an identical sparsity pattern into fundamental supernodes, then
// optionally relaxes that grouping by merging small or nearly-identical
// neighbouring supernodes to trade a bounded number of explicit zero
// entries for larger, BLAS-3-friendly dense blocks.
//
// Detect identifies fundamental supernode boundaries from subtree sizes and
// the last row each column touched. RelaxH1, RelaxH2 and RelaxH3 implement
// three interchangeable merge heuristics (H1, H2, H3) sharing one child-walking skeleton: each
// evaluates every child of a supernode against its merge criterion and
// folds in the best candidate, repeating until no child qualifies. Rebuild
// then turns the possibly-merged grouping into the final nodal permutation,
// supernodal elimination tree, and per-supernode accounting.
package supernode
