// Package order supplies the fill-reducing permutation that the analysis
// pipeline applies before building the elimination tree.
//
// Orderer is deliberately opaque: the rest of the pipeline only ever sees a
// permutation, never the ordering algorithm's internals, mirroring the
// reference design where any third-party nested-dissection library could
// be swapped in without touching the analysis code. NestedDissection is the
// bundled default — a recursive graph bisection via breadth-first level
// sets from a pseudo-peripheral vertex, in the spirit of George & Liu's
// algorithm, built without an external graph-partitioning dependency.
package order
