package order

import (
	"fmt"

	"github.com/katalvlaran/symfact/symerr"
)

var (
	// ErrEmptyGraph is returned when NestedDissection is asked to order a
	// zero-vertex graph.
	ErrEmptyGraph = fmt.Errorf("order: graph has no vertices: %w", symerr.ErrOrderingFailed)

	// ErrBadPermutation is returned when a user-supplied permutation fails
	// validation.
	ErrBadPermutation = fmt.Errorf("order: user-supplied permutation invalid: %w", symerr.ErrOrderingFailed)
)
