package analyse

import (
	"fmt"

	"github.com/katalvlaran/symfact/symerr"
)

// ErrConsumedWorkspace is returned by Run when called on a Workspace whose
// Run has already completed (successfully or not).
var ErrConsumedWorkspace = fmt.Errorf("analyse: workspace already consumed: %w", symerr.ErrConsumedWorkspace)
