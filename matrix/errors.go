package matrix

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/symfact/symerr"
)

var (
	// ErrMatrixDimensionMismatch is returned when an operation receives
	// operands of incompatible shape.
	ErrMatrixDimensionMismatch = fmt.Errorf("matrix: dimension mismatch: %w", symerr.ErrInvalidInput)

	// ErrIndexOutOfRange is returned by At/Set when row or col falls
	// outside the matrix's bounds.
	ErrIndexOutOfRange = fmt.Errorf("matrix: index out of range: %w", symerr.ErrInvalidInput)

	// ErrNotPositiveDefinite is returned by Cholesky when a pivot is not
	// strictly positive.
	ErrNotPositiveDefinite = errors.New("matrix: not positive definite")
)
