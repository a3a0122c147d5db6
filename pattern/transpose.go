package pattern

// transpose computes the CSC transpose of an n x n sparse pattern: for every
// stored entry (row, col) in the input, the output stores (col, row). This
// is the workhorse behind both canonicalisation (a double transpose sorts
// columns in ascending row order) and the upper/lower view pair.
//
// Complexity: O(n + len(rows)) time and space, via two counting passes
// (count destinations per row, then scatter).
func transpose(n int, ptr, rows []int) (ptrOut, rowsOut []int) {
	// Stage 1: count how many entries land in each destination column
	// (= each distinct row value of the input).
	counts := make([]int, n)
	for j := 0; j < n; j++ {
		for e := ptr[j]; e < ptr[j+1]; e++ {
			counts[rows[e]]++
		}
	}

	// Stage 2: prefix-sum counts into column pointers.
	ptrOut = make([]int, n+1)
	for i := 0; i < n; i++ {
		ptrOut[i+1] = ptrOut[i] + counts[i]
	}

	// Stage 3: scatter entries using a mutable cursor per destination column.
	cursor := make([]int, n)
	copy(cursor, ptrOut[:n])
	rowsOut = make([]int, ptrOut[n])
	for j := 0; j < n; j++ {
		for e := ptr[j]; e < ptr[j+1]; e++ {
			i := rows[e]
			rowsOut[cursor[i]] = j
			cursor[i]++
		}
	}

	return ptrOut, rowsOut
}
