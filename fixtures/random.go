package fixtures

import "fmt"

// RandomSparse returns the upper-triangular CSC pattern of an
// Erdos-Renyi random graph on n vertices: every off-diagonal pair (i, j)
// with i < j is included independently with probability cfg.density, and
// every diagonal entry is always present. Use WithSeed for reproducible
// instances and WithDensity to control sparsity.
func RandomSparse(n int, opts ...Option) (rowsIn, ptrIn []int, err error) {
	if n < minTopologyNodes {
		return nil, nil, fmt.Errorf("RandomSparse: n=%d < min=%d: %w", n, minTopologyNodes, ErrTooFewVertices)
	}
	cfg := newConfig(opts...)

	ptr := make([]int, n+1)
	var rows []int
	for j := 0; j < n; j++ {
		count := 0
		for i := 0; i < j; i++ {
			if cfg.rng.Float64() < cfg.density {
				rows = append(rows, i)
				count++
			}
		}
		rows = append(rows, j)
		count++
		ptr[j+1] = ptr[j] + count
	}
	return rows, ptr, nil
}
