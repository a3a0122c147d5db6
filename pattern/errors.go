package pattern

import (
	"fmt"

	"github.com/katalvlaran/symfact/symerr"
)

// Sentinel errors for the pattern package. Each wraps symerr.ErrInvalidInput
// so callers can match either the specific cause (errors.Is(err,
// pattern.ErrNotMonotone)) or the broad category (errors.Is(err,
// symerr.ErrInvalidInput)).
var (
	// ErrNotMonotone indicates ptrIn is not monotone non-decreasing.
	ErrNotMonotone = fmt.Errorf("pattern: ptr must be monotone non-decreasing: %w", symerr.ErrInvalidInput)

	// ErrRowOutOfRange indicates a row index in rowsIn lies outside [0, N).
	ErrRowOutOfRange = fmt.Errorf("pattern: row index out of range: %w", symerr.ErrInvalidInput)

	// ErrDimensionMismatch indicates rowsIn/ptrIn/permutation lengths disagree.
	ErrDimensionMismatch = fmt.Errorf("pattern: dimension mismatch: %w", symerr.ErrInvalidInput)

	// ErrBadPermutation indicates a caller-supplied permutation is not a
	// bijection on 0..N-1.
	ErrBadPermutation = fmt.Errorf("pattern: not a valid permutation: %w", symerr.ErrInvalidInput)
)

// wrapf prefixes err with a "CSC.method" context, preserving the sentinel
// chain for errors.Is.
func wrapf(method string, err error) error {
	return fmt.Errorf("CSC.%s: %w", method, err)
}
