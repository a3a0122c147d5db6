// Package verify cross-checks a symbolic factorization against dense
// linear algebra on a small random instance of the same sparsity pattern.
// It exists purely as a debugging aid: assemble a random, diagonally
// dominant dense matrix honouring the original pattern, Cholesky-factor it
// with plain dense arithmetic, and compare which entries came out nonzero
// against the supernodal pattern the symbolic phase predicted.
package verify
