// Package etree builds the elimination tree of a canonicalised upper
// triangular pattern, postorders it, and exposes the children-linked-list
// and subtree-size utilities shared by the column-count and supernode
// stages downstream.
//
// The tree is stored as a plain parent array with -1 sentinels for roots,
// never as linked node objects — children lists are synthesised on demand
// as head/next index arrays, so the whole structure stays an arena of
// integers (no pointer chasing, no GC pressure from per-node allocation).
//
// Postorder uses an iterative, explicit-stack depth-first walk: the tree
// can be N deep on pathological inputs, which would blow the call stack of
// a naive recursive implementation.
package etree
