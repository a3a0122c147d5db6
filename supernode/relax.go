package supernode

import "math"

// Config tunes the relaxation heuristics.
type Config struct {
	MaxArtificialNz int     // H1: cap on the cumulative fake nonzeros of a merged supernode
	SmallSnThresh   int     // H1: both supernodes must be smaller than this for the secondary rule
	H2RatioBound    float64 // H2: accept a merge while merged/unmerged flop ratio stays at or below this
	H3RatioBound    float64 // H3: accept a merge while fake-nonzero fraction stays at or below this
}

// DefaultConfig mirrors the reference tuning constants.
func DefaultConfig() Config {
	return Config{
		MaxArtificialNz: 10000,
		SmallSnThresh:   32,
		H2RatioBound:    1.2,
		H3RatioBound:    0.02,
	}
}

// RelaxH1 merges a child into its parent supernode whenever the smallest
// resulting fake-nonzero count stays within cfg.MaxArtificialNz. If no
// child satisfies that, a secondary rule applies: among children where both
// parent and child are smaller than cfg.SmallSnThresh, the one producing
// fewest fake nonzeros is merged regardless of the cap. Iterates per parent
// until no further child qualifies.
func RelaxH1(info *Info, colcount []int, cfg Config) *Merged {
	snSize, clique := cliqueSizes(info, colcount)
	fakeNz := make([]int, info.Count)
	firstChild, nextChild := childLists(info.Parent)
	mergedInto := make([]int, info.Count)
	for i := range mergedInto {
		mergedInto[i] = -1
	}
	merged := 0

	for sn := 0; sn < info.Count; sn++ {
	merging:
		for {
			child := firstChild[sn]

			bestCap, bestCapSize, bestCapChild := math.MaxInt64, 0, -1
			bestSmall, bestSmallSize, bestSmallChild := math.MaxInt64, 0, -1

			for child != -1 {
				totalArtNz := artificialNz(snSize, clique, sn, child, fakeNz)

				if totalArtNz < bestCap || (totalArtNz == bestCap && bestCapSize < snSize[child]) {
					bestCap, bestCapSize, bestCapChild = totalArtNz, snSize[child], child
				}

				if snSize[sn] < cfg.SmallSnThresh && snSize[child] < cfg.SmallSnThresh &&
					(totalArtNz < bestSmall || (totalArtNz == bestSmall && bestSmallSize < snSize[child])) {
					bestSmall, bestSmallSize, bestSmallChild = totalArtNz, snSize[child], child
				}

				child = nextChild[child]
			}

			switch {
			case bestCap <= cfg.MaxArtificialNz:
				snSize[sn] += bestCapSize
				fakeNz[sn] = bestCap
				merged++
				mergedInto[bestCapChild] = sn
				unlinkChild(firstChild, nextChild, sn, bestCapChild)
			case bestSmallChild > -1:
				snSize[sn] += bestSmallSize
				fakeNz[sn] = bestSmall
				merged++
				mergedInto[bestSmallChild] = sn
				unlinkChild(firstChild, nextChild, sn, bestSmallChild)
			default:
				break merging
			}
		}
	}

	return &Merged{MergedInto: mergedInto, FakeNonzeros: fakeNz, Count: merged}
}

// RelaxH2 merges children based on the ratio of flops the merged block
// would require versus the sum of flops the two supernodes require
// unrelaxed, accepting whichever child keeps that ratio lowest as long as
// it does not exceed cfg.H2RatioBound.
func RelaxH2(info *Info, colcount []int, cfg Config) *Merged {
	snSize, clique := cliqueSizes(info, colcount)
	fakeNz := make([]int, info.Count)
	opsNorelax := make([]float64, info.Count)
	opsMerged := make([]float64, info.Count)
	for s := 0; s < info.Count; s++ {
		sz, cl := float64(snSize[s]), float64(clique[s])
		temp := sz + cl
		opsNorelax[s] = temp*temp*sz - temp*sz*(sz+1) + sz*(sz+1)*(2*sz+1)/6
		opsMerged[s] = opsNorelax[s]
	}

	firstChild, nextChild := childLists(info.Parent)
	mergedInto := make([]int, info.Count)
	for i := range mergedInto {
		mergedInto[i] = -1
	}
	merged := 0

	for sn := 0; sn < info.Count; sn++ {
		for {
			child := firstChild[sn]
			bestRatio := 999.0
			bestChild := -1

			for child != -1 {
				deltaOps := float64(snSize[sn]+clique[sn]-clique[child]) * float64(snSize[child]) *
					float64(snSize[sn]+clique[sn]+snSize[child]+clique[child]-1)
				ratio := (opsMerged[sn] + opsMerged[child] + deltaOps) / (opsNorelax[sn] + opsNorelax[child])
				if ratio < bestRatio {
					bestRatio = ratio
					bestChild = child
				}
				child = nextChild[child]
			}

			if bestRatio > cfg.H2RatioBound {
				break
			}

			totalArtNz := artificialNz(snSize, clique, sn, bestChild, fakeNz)
			deltaOps := float64(snSize[sn]+clique[sn]-clique[bestChild]) * float64(snSize[bestChild]) *
				float64(snSize[sn]+clique[sn]+snSize[bestChild]+clique[bestChild]-1)
			opsMerged[sn] = opsMerged[sn] + opsMerged[bestChild] + deltaOps
			opsNorelax[sn] += opsNorelax[bestChild]
			fakeNz[sn] = totalArtNz
			snSize[sn] += snSize[bestChild]
			merged++
			mergedInto[bestChild] = sn
			unlinkChild(firstChild, nextChild, sn, bestChild)
		}
	}

	return &Merged{MergedInto: mergedInto, FakeNonzeros: fakeNz, Count: merged}
}

// RelaxH3 merges children based on the fraction of the merged block's
// nonzeros that would be artificial, accepting the child that minimises
// that fraction as long as it stays at or below cfg.H3RatioBound.
func RelaxH3(info *Info, colcount []int, cfg Config) *Merged {
	snSize, clique := cliqueSizes(info, colcount)
	fakeNz := make([]int, info.Count)
	origNz := make([]int, info.Count)
	for s := 0; s < info.Count; s++ {
		origNz[s] = snSize[s] * (snSize[s] + 2*clique[s] + 1) / 2
	}

	firstChild, nextChild := childLists(info.Parent)
	mergedInto := make([]int, info.Count)
	for i := range mergedInto {
		mergedInto[i] = -1
	}
	merged := 0

	for sn := 0; sn < info.Count; sn++ {
		for {
			child := firstChild[sn]
			bestRatio := 1.0
			bestNz, bestSize, bestChild := 0, 0, -1

			for child != -1 {
				totalArtNz := artificialNz(snSize, clique, sn, child, fakeNz)
				ratio := float64(totalArtNz) / float64(origNz[sn]+origNz[child]+totalArtNz)
				if ratio < bestRatio {
					bestRatio, bestNz, bestSize, bestChild = ratio, totalArtNz, snSize[child], child
				}
				child = nextChild[child]
			}

			if bestRatio > cfg.H3RatioBound {
				break
			}

			snSize[sn] += bestSize
			fakeNz[sn] = bestNz
			merged++
			mergedInto[bestChild] = sn
			unlinkChild(firstChild, nextChild, sn, bestChild)
		}
	}

	return &Merged{MergedInto: mergedInto, FakeNonzeros: fakeNz, Count: merged}
}
