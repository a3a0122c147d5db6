// Package pattern ingests a symmetric matrix nonzero pattern in CSC form and
// maintains it in canonical shape: upper triangle only, columns sorted in
// strictly ascending row order, with a parallel lower-triangle view derived
// by transposition for O(1) row/column neighbour access.
//
// Ingestion (NewCSC) accepts a full or half-symmetric CSC pattern with an
// optional diagonal and canonicalises it via the double-transpose trick: one
// transpose flips storage (unless the input holds only the upper triangle),
// an identity symmetric permutation extracts exactly the upper triangle and
// drops the entries of the mirrored half, and a further double transpose
// restores ascending column order; any missing diagonal entry is then
// added. Every later repermutation (postorder, supernode relaxation) reuses
// the same Permute + double-transpose sequence.
//
// Complexity: ingestion and every permutation are O(N + NZU) via counting
// sort; no stage in this package allocates more than a small constant
// multiple of the final pattern size.
package pattern
