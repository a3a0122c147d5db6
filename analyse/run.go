package analyse

import (
	"github.com/katalvlaran/symfact/colcount"
	"github.com/katalvlaran/symfact/etree"
	"github.com/katalvlaran/symfact/pattern"
	"github.com/katalvlaran/symfact/relind"
	"github.com/katalvlaran/symfact/snpattern"
	"github.com/katalvlaran/symfact/supernode"
	"github.com/katalvlaran/symfact/verify"
)

// Run performs the full symbolic analysis and returns the immutable
// result. After Run returns, w must not be used again; a second call
// returns ErrConsumedWorkspace.
func (w *Workspace) Run() (*Symbolic, error) {
	if w.consumed {
		return nil, ErrConsumedWorkspace
	}
	w.consumed = true

	c := w.c
	nzOriginal := c.NZU()

	permSlice, err := w.resolveOrdering(c)
	if err != nil {
		return nil, err
	}
	running, err := pattern.NewPermutation(permSlice)
	if err != nil {
		return nil, err
	}
	if err := c.Permute(running.Iperm); err != nil {
		return nil, err
	}

	t := etree.Build(c)
	t, err = etree.Rebuild(t, c, &running)
	if err != nil {
		return nil, err
	}

	cc := colcount.Count(c, t)

	opsNorelax := 0.0
	for _, k := range cc {
		opsNorelax += float64(k-1) * float64(k-1)
	}

	info := supernode.Detect(t, c)

	var merged *supernode.Merged
	switch w.cfg.Heuristic {
	case HeuristicFlopRatio:
		merged = supernode.RelaxH2(info, cc, w.cfg.Relax)
	case HeuristicFakeNzFraction:
		merged = supernode.RelaxH3(info, cc, w.cfg.Relax)
	default:
		merged = supernode.RelaxH1(info, cc, w.cfg.Relax)
	}

	result, err := supernode.Rebuild(info, merged, cc, c, &running)
	if err != nil {
		return nil, err
	}

	sp := snpattern.Build(c, result.Info, result.Indices)
	relindCols := relind.Cols(c, result.Info, sp)
	clique := relind.Build(result.Info, sp)

	nzL := 0.0
	for _, k := range cc {
		nzL += float64(k)
	}
	nzL += float64(result.ArtificialNz)

	largestFront := 0
	for _, k := range result.Indices {
		if k > largestFront {
			largestFront = k
		}
	}
	largestSn := 0
	for s := 0; s < result.Info.Count; s++ {
		if sz := result.Info.Size(s); sz > largestSn {
			largestSn = sz
		}
	}

	sym := &Symbolic{
		N:               c.N,
		NZ:              nzL,
		Fillin:          nzL / float64(nzOriginal),
		SnCount:         result.Info.Count,
		ArtificialNz:    result.ArtificialNz,
		ArtificialOp:    result.Operations - opsNorelax,
		AssemblyOp:      clique.AssemblyOps,
		LargestFront:    largestFront,
		LargestSn:       largestSn,
		Operations:      result.Operations,
		Perm:            running.Perm,
		Iperm:           running.Iperm,
		SnPtr:           sp.Ptr,
		SnRows:          sp.Rows,
		SnParent:        result.Info.Parent,
		SnStart:         result.Info.Start,
		RelindCols:      relindCols,
		RelindClique:    clique.RelInd,
		ConsecutiveSums: clique.ConsecutiveSums,
	}

	if w.cfg.DebugCheck {
		report, err := verify.Check(c, result.Info, sp, result.ArtificialNz, w.cfg.DebugSeed)
		if err != nil {
			return nil, err
		}
		sym.DebugReport = report
	}

	return sym, nil
}

// resolveOrdering returns the perm slice to apply: the user-supplied
// permutation if New received one, otherwise cfg.Orderer's computation.
func (w *Workspace) resolveOrdering(c *pattern.CSC) ([]int, error) {
	if w.userPerm != nil {
		return w.userPerm, nil
	}
	return w.cfg.Orderer.Order(c)
}
