// Package matrix provides a minimal dense matrix type used only by the
// debug verification path: assembling a small random instance of the
// original sparsity pattern and comparing its factor's nonzero structure
// against the symbolic prediction.
package matrix
