package pattern

// CSC holds the canonical pattern of a symmetric matrix: the upper triangle
// in compressed-sparse-column form, plus a derived lower-triangle view.
//
// Invariants (hold after NewCSC and after every exported mutator returns
// without error):
//   - for every stored entry (i, j) in the upper view, i <= j;
//   - within each column, row indices are strictly ascending;
//   - PtrL/RowsL is exactly the transpose of PtrU/RowsU.
type CSC struct {
	N     int   // matrix dimension
	PtrU  []int // upper-triangle column pointers, length N+1
	RowsU []int // upper-triangle row indices, length PtrU[N]
	PtrL  []int // lower-triangle (transposed) column pointers, length N+1
	RowsL []int // lower-triangle row indices, length PtrL[N]
}

// NZU returns the number of stored upper-triangle nonzeros.
func (c *CSC) NZU() int {
	return c.PtrU[c.N]
}

// validateRaw checks the monotonicity of ptrIn and the range of rowsIn
// before any transpose is attempted.
func validateRaw(n int, ptrIn, rowsIn []int) error {
	if len(ptrIn) != n+1 {
		return wrapf("NewCSC", ErrDimensionMismatch)
	}
	if ptrIn[0] != 0 {
		return wrapf("NewCSC", ErrNotMonotone)
	}
	for j := 0; j < n; j++ {
		if ptrIn[j+1] < ptrIn[j] {
			return wrapf("NewCSC", ErrNotMonotone)
		}
	}
	if len(rowsIn) != ptrIn[n] {
		return wrapf("NewCSC", ErrDimensionMismatch)
	}
	for _, r := range rowsIn {
		if r < 0 || r >= n {
			return wrapf("NewCSC", ErrRowOutOfRange)
		}
	}
	return nil
}

// NewCSC ingests a full or half-symmetric CSC pattern (diagonal optional)
// and canonicalises it into strictly-ascending upper-triangular form.
//
// The construction follows the reference double-transpose trick: transpose
// once to flip storage (skipped when the input holds only the upper
// triangle), apply an identity symmetric permutation to extract exactly the
// upper triangle (dropping the mirrored half of a full input), then
// double-transpose to restore ascending column order and derive the lower
// view. Every diagonal entry the input omits is added.
//
// Complexity: O(N + NZU) time and space.
func NewCSC(rowsIn, ptrIn []int) (*CSC, error) {
	n := len(ptrIn) - 1
	if n < 0 {
		return nil, wrapf("NewCSC", ErrDimensionMismatch)
	}
	if err := validateRaw(n, ptrIn, rowsIn); err != nil {
		return nil, err
	}

	// Step 1: flip storage when any entry lies below the diagonal; an
	// upper-only input is already in the half that step 2 keeps.
	lower := false
	for j := 0; j < n; j++ {
		for e := ptrIn[j]; e < ptrIn[j+1]; e++ {
			lower = lower || rowsIn[e] > j
		}
	}
	ptrU, rowsU := ptrIn, rowsIn
	if lower {
		ptrU, rowsU = transpose(n, ptrIn, rowsIn)
	}

	c := &CSC{N: n, PtrU: ptrU, RowsU: rowsU}

	// Step 2: identity symmetric permutation extracts the upper triangle.
	identity := make([]int, n)
	for i := range identity {
		identity[i] = i
	}
	if err := c.permuteUpper(identity); err != nil {
		return nil, err
	}

	// Step 3: double transpose sorts columns and derives the lower view.
	c.resort()

	// Step 4: add each missing diagonal entry; in a sorted upper column the
	// diagonal, when present, is the last row.
	ptr, rows := make([]int, n+1), make([]int, 0, c.NZU()+n)
	for j := 0; j < n; j++ {
		rows = append(rows, c.RowsU[c.PtrU[j]:c.PtrU[j+1]]...)
		if len(rows) == ptr[j] || rows[len(rows)-1] != j {
			rows = append(rows, j)
		}
		ptr[j+1] = len(rows)
	}
	c.PtrU, c.RowsU = ptr, rows
	c.resort()

	return c, nil
}

// permuteUpper rewrites the upper triangle so that the new entry at
// (iperm[i], iperm[j]) appears in upper-triangular form, per spec.md §4.3.
// It does not resort columns or refresh the lower view; callers must call
// resort afterward.
//
// Complexity: O(N + NZU) via two counting passes (count destinations, then
// scatter).
func (c *CSC) permuteUpper(iperm []int) error {
	if len(iperm) != c.N {
		return wrapf("Permute", ErrDimensionMismatch)
	}

	n := c.N
	counts := make([]int, n)

	// Pass 1: count destinations per column.
	for j := 0; j < n; j++ {
		col := iperm[j]
		for e := c.PtrU[j]; e < c.PtrU[j+1]; e++ {
			i := c.RowsU[e]
			if i > j {
				continue // ignore entries stored below the diagonal
			}
			row := iperm[i]
			actualCol := row
			if col > row {
				actualCol = col
			}
			counts[actualCol]++
		}
	}

	newPtr := make([]int, n+1)
	for i := 0; i < n; i++ {
		newPtr[i+1] = newPtr[i] + counts[i]
	}
	newRows := make([]int, newPtr[n])
	cursor := make([]int, n)
	copy(cursor, newPtr[:n])

	// Pass 2: scatter.
	for j := 0; j < n; j++ {
		col := iperm[j]
		for e := c.PtrU[j]; e < c.PtrU[j+1]; e++ {
			i := c.RowsU[e]
			if i > j {
				continue
			}
			row := iperm[i]
			actualCol, actualRow := row, col
			if col > row {
				actualCol, actualRow = col, row
			}
			newRows[cursor[actualCol]] = actualRow
			cursor[actualCol]++
		}
	}

	c.PtrU = newPtr
	c.RowsU = newRows
	return nil
}

// resort restores ascending row order within each column and rebuilds the
// lower-triangle view, via a double transpose.
//
// Complexity: O(N + NZU).
func (c *CSC) resort() {
	c.PtrL, c.RowsL = transpose(c.N, c.PtrU, c.RowsU)
	c.PtrU, c.RowsU = transpose(c.N, c.PtrL, c.RowsL)
}

// Permute applies a symmetric permutation described by its inverse iperm
// (iperm[i] is the new index of original index i) and restores canonical
// (sorted, lower-view-refreshed) form.
//
// Complexity: O(N + NZU).
func (c *CSC) Permute(iperm []int) error {
	if err := c.permuteUpper(iperm); err != nil {
		return err
	}
	c.resort()
	return nil
}

// Clone returns a deep copy, used by callers that need to retain a
// pre-permutation snapshot (e.g. for testing idempotence).
func (c *CSC) Clone() *CSC {
	cp := &CSC{N: c.N}
	cp.PtrU = append([]int(nil), c.PtrU...)
	cp.RowsU = append([]int(nil), c.RowsU...)
	cp.PtrL = append([]int(nil), c.PtrL...)
	cp.RowsL = append([]int(nil), c.RowsL...)
	return cp
}
