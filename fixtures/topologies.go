package fixtures

import "fmt"

const minTopologyNodes = 2

// Path returns the upper-triangular CSC pattern of a tridiagonal matrix of
// size n: column 0 holds only its diagonal, column j>0 holds the
// super-diagonal entry (j-1, j) and its diagonal (j, j).
func Path(n int, opts ...Option) (rowsIn, ptrIn []int, err error) {
	if n < minTopologyNodes {
		return nil, nil, fmt.Errorf("Path: n=%d < min=%d: %w", n, minTopologyNodes, ErrTooFewVertices)
	}
	ptr := make([]int, n+1)
	var rows []int
	rows = append(rows, 0)
	ptr[1] = 1
	for j := 1; j < n; j++ {
		rows = append(rows, j-1, j)
		ptr[j+1] = ptr[j] + 2
	}
	return rows, ptr, nil
}

// Star returns the upper-triangular CSC pattern of a star graph of size n
// with hub vertex 0: column 0 holds only its diagonal, column j>=1 holds
// the spoke entry (0, j) and its diagonal (j, j).
func Star(n int, opts ...Option) (rowsIn, ptrIn []int, err error) {
	if n < minTopologyNodes {
		return nil, nil, fmt.Errorf("Star: n=%d < min=%d: %w", n, minTopologyNodes, ErrTooFewVertices)
	}
	ptr := make([]int, n+1)
	var rows []int
	rows = append(rows, 0)
	ptr[1] = 1
	for j := 1; j < n; j++ {
		rows = append(rows, 0, j)
		ptr[j+1] = ptr[j] + 2
	}
	return rows, ptr, nil
}

// Complete returns the upper-triangular CSC pattern of a fully dense
// symmetric matrix of size n: column j holds every row 0..j.
func Complete(n int, opts ...Option) (rowsIn, ptrIn []int, err error) {
	if n < minTopologyNodes {
		return nil, nil, fmt.Errorf("Complete: n=%d < min=%d: %w", n, minTopologyNodes, ErrTooFewVertices)
	}
	ptr := make([]int, n+1)
	var rows []int
	for j := 0; j < n; j++ {
		for i := 0; i <= j; i++ {
			rows = append(rows, i)
		}
		ptr[j+1] = ptr[j] + (j + 1)
	}
	return rows, ptr, nil
}

// Blocks returns the upper-triangular CSC pattern of two disconnected
// dense blocks of sizes n1 and n2 placed on the diagonal: columns
// 0..n1-1 form one complete block, columns n1..n1+n2-1 form the other,
// with no entries between them.
func Blocks(n1, n2 int, opts ...Option) (rowsIn, ptrIn []int, err error) {
	if n1 < 1 || n2 < 1 {
		return nil, nil, fmt.Errorf("Blocks: n1=%d, n2=%d must both be >= 1: %w", n1, n2, ErrTooFewVertices)
	}
	n := n1 + n2
	ptr := make([]int, n+1)
	var rows []int
	for j := 0; j < n1; j++ {
		for i := 0; i <= j; i++ {
			rows = append(rows, i)
		}
		ptr[j+1] = ptr[j] + (j + 1)
	}
	for j := n1; j < n; j++ {
		local := j - n1
		for i := 0; i <= local; i++ {
			rows = append(rows, n1+i)
		}
		ptr[j+1] = ptr[j] + (local + 1)
	}
	return rows, ptr, nil
}
