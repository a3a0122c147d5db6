package analyse

import (
	"github.com/katalvlaran/symfact/pattern"
)

// Workspace holds the mutable state of one analysis run. Construct with
// New and call Run exactly once; Run moves every intermediate buffer into
// the returned Symbolic, so a Workspace cannot be reused.
type Workspace struct {
	c        *pattern.CSC
	cfg      Config
	userPerm []int // nil unless the caller supplied an explicit ordering
	consumed bool
}

// New ingests a symmetric pattern in CSC form (rowsIn/ptrIn, lower or upper
// or full, diagonal optional) and prepares a Workspace for Run.
//
// If order is non-empty, it is used as the fill-reducing ordering instead
// of invoking cfg.Orderer — order[k] must be the original index placed at
// position k. The postorder and relaxation stages of Run still repermute on
// top of it, so Symbolic.Perm can differ from order.
func New(rowsIn, ptrIn []int, order []int, opts ...Option) (*Workspace, error) {
	c, err := pattern.NewCSC(rowsIn, ptrIn)
	if err != nil {
		return nil, err
	}

	cfg := newConfig(opts...)

	var userPerm []int
	if len(order) > 0 {
		if err := pattern.Validate(order, c.N); err != nil {
			return nil, err
		}
		userPerm = append([]int(nil), order...)
	}

	return &Workspace{c: c, cfg: cfg, userPerm: userPerm}, nil
}
