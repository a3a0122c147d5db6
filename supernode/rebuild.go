package supernode

import (
	"github.com/katalvlaran/symfact/pattern"
)

// Result is the final, post-relaxation supernode partition together with
// the bookkeeping needed by the sparsity-pattern and relative-index stages.
type Result struct {
	Info         *Info
	Indices      []int // Indices[s] is the number of row indices stored for supernode s
	ArtificialNz int
	Operations   float64 // flop count of the factorization under this partition
}

// Rebuild folds the merges recorded in m into info: it renumbers surviving
// supernodes, permutes columns so every merged-in supernode's columns sit
// contiguously before its surviving parent's, rebuilds the supernodal
// elimination tree over the new numbering, and permutes c and running to
// match.
//
// Grounded on the reference post-relaxation bookkeeping pass: merged
// supernodes are gathered under their surviving ancestor via an explicit
// stack (avoiding recursion on the receives-from relation), and the new
// per-supernode index count is the merged column count plus the clique
// size of whichever original supernode root absorbed the merges.
func Rebuild(info *Info, m *Merged, colcount []int, c *pattern.CSC, running *pattern.Permutation) (*Result, error) {
	newCount := info.Count - m.Count

	receivedFrom := make([][]int, info.Count)
	for sn := 0; sn < info.Count; sn++ {
		if into := m.MergedInto[sn]; into > -1 {
			receivedFrom[into] = append(receivedFrom[into], sn)
		}
	}

	snPerm := make([]int, 0, info.Count)
	newID := make([]int, info.Count)
	newStart := make([]int, newCount+1)
	indices := make([]int, newCount)

	startIdx := 0
	nextID := 0
	artificialNz := 0

	for sn := 0; sn < info.Count; sn++ {
		if m.MergedInto[sn] > -1 {
			continue
		}

		startIdx++
		stack := []int{sn}
		colsInNewSn := 0
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			if len(receivedFrom[cur]) > 0 {
				stack = append(stack, receivedFrom[cur]...)
				receivedFrom[cur] = nil
				continue
			}
			stack = stack[:len(stack)-1]
			snPerm = append(snPerm, cur)
			newID[cur] = nextID
			colsInNewSn += info.Size(cur)
		}
		newStart[startIdx] = colsInNewSn

		artificialNz += m.FakeNonzeros[sn]
		indices[nextID] = colsInNewSn + colcount[info.Start[sn]] - info.Size(sn)
		nextID++
	}

	for i := 0; i < newCount; i++ {
		newStart[i+1] += newStart[i]
	}

	operations := 0.0
	for sn := 0; sn < newCount; sn++ {
		snCols := float64(indices[sn])
		width := newStart[sn+1] - newStart[sn]
		for i := 0; i < width; i++ {
			operations += (snCols - float64(i) - 1) * (snCols - float64(i) - 1)
		}
	}

	newPerm := make([]int, c.N)
	pos := 0
	for _, sn := range snPerm {
		for j := info.Start[sn]; j < info.Start[sn+1]; j++ {
			newPerm[pos] = j
			pos++
		}
	}
	iperm := pattern.Inverse(newPerm)

	newSnParent := make([]int, newCount)
	for i := range newSnParent {
		newSnParent[i] = -1
	}
	for sn := 0; sn < info.Count; sn++ {
		if info.Parent[sn] == -1 {
			continue
		}
		ii, pp := newID[sn], newID[info.Parent[sn]]
		if ii == pp {
			continue
		}
		newSnParent[ii] = pp
	}

	belong := make([]int, c.N)
	for sn := 0; sn < info.Count; sn++ {
		for i := info.Start[sn]; i < info.Start[sn+1]; i++ {
			belong[i] = newID[sn]
		}
	}
	permuteVector(belong, newPerm)

	if err := c.Permute(iperm); err != nil {
		return nil, err
	}
	running.Compose(newPerm)

	newInfo := &Info{Belong: belong, Start: newStart, Parent: newSnParent, Count: newCount}

	return &Result{Info: newInfo, Indices: indices, ArtificialNz: artificialNz, Operations: operations}, nil
}

// permuteVector overwrites v in place with v reindexed by perm, i.e.
// v'[k] = v[perm[k]], mirroring the reference PermuteVector helper used
// after every repermutation stage.
func permuteVector(v, perm []int) {
	out := make([]int, len(v))
	for k, i := range perm {
		out[k] = v[i]
	}
	copy(v, out)
}
