// Package analyse orchestrates the symbolic factorization pipeline: it
// ingests a sparse symmetric pattern, computes a fill-reducing permutation,
// builds and postorders the elimination tree, counts factor nonzeros,
// detects and relaxes supernodes, builds the supernodal pattern, and
// derives the relative-index tables the numeric phase needs — packaging
// the whole result into an immutable Symbolic value.
//
// A Workspace is single-use: Run consumes it, and a second call returns
// ErrConsumedWorkspace. This mirrors the reference design where the
// analysis object's internal buffers are moved into the result rather than
// copied, making reuse a logic error rather than a silent waste of memory.
package analyse
