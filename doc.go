// Package symfact performs the symbolic analysis phase of a sparse direct
// Cholesky solver: it takes a symmetric sparse matrix pattern and produces
// everything a numeric supernodal factorization needs, without ever
// touching the numeric values.
//
// The pipeline, end to end:
//
//	pattern    — ingest and canonicalise the sparse pattern (CSC, upper triangle)
//	order      — compute a fill-reducing permutation
//	etree      — build and postorder the elimination tree
//	colcount   — count the nonzeros each factor column will have
//	supernode  — group columns into supernodes and relax the grouping
//	snpattern  — build the supernodal row pattern
//	relind     — derive the relative-index tables the numeric phase scatters through
//	verify     — optional dense cross-check, for debugging only
//
// analyse.Workspace orchestrates all of the above and packages the result
// into an immutable analyse.Symbolic value. A Workspace runs once:
//
//	ws, err := analyse.New(rowsIn, ptrIn, nil)
//	sym, err := ws.Run()
//
// fixtures provides small canonical patterns (path, star, complete, block
// diagonal, random) for exercising the pipeline without external data.
package symfact
