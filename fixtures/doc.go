// Package fixtures builds small CSC sparsity patterns for exercising the
// analysis pipeline: canonical topologies (path, star, complete, block
// diagonal) plus a seeded Erdos-Renyi fuzz generator. Every constructor
// returns raw (rowsIn, ptrIn) pairs in upper-triangular CSC form, ready to
// hand straight to pattern.NewCSC.
package fixtures
