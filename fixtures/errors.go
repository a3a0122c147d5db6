package fixtures

import (
	"fmt"

	"github.com/katalvlaran/symfact/symerr"
)

// ErrTooFewVertices is returned when a constructor's size parameter is
// smaller than the topology requires.
var ErrTooFewVertices = fmt.Errorf("fixtures: too few vertices: %w", symerr.ErrInvalidInput)
