package relind

import (
	"github.com/katalvlaran/symfact/pattern"
	"github.com/katalvlaran/symfact/snpattern"
	"github.com/katalvlaran/symfact/supernode"
)

// Cols computes, for every stored lower-triangle entry of c, its offset
// within the frontal matrix of the supernode owning its column: Cols has
// the same layout as c.PtrL/c.RowsL, and Cols[c.PtrL[col]+k] is the row
// offset, within the owning supernode's pattern, of the k-th stored row of
// column col.
//
// Both the original column and the supernode pattern are sorted ascending,
// so a single co-ascending merge finds every match in linear time.
func Cols(c *pattern.CSC, info *supernode.Info, sp *snpattern.Pattern) []int {
	relindCols := make([]int, len(c.RowsL))

	for sn := 0; sn < info.Count; sn++ {
		ptLStart, ptLEnd := sp.Ptr[sn], sp.Ptr[sn+1]

		for col := info.Start[sn]; col < info.Start[sn+1]; col++ {
			ptA := c.PtrL[col]
			ptL := ptLStart
			colSize := c.PtrL[col+1] - c.PtrL[col]
			index := 0

			for ptL < ptLEnd && index < colSize {
				if sp.Rows[ptL] == c.RowsL[ptA] {
					relindCols[c.PtrL[col]+index] = ptL - ptLStart
					index++
					ptL++
					ptA++
				} else {
					ptL++
				}
			}
		}
	}

	return relindCols
}
