package order

import (
	"github.com/katalvlaran/symfact/pattern"
)

// Orderer computes a fill-reducing permutation for a canonicalised pattern.
// Implementations are pure functions of the pattern: same input, same
// output, no shared state between calls.
type Orderer interface {
	Order(c *pattern.CSC) (perm []int, err error)
}

// nestedDissectionOrderer is the bundled default Orderer.
type nestedDissectionOrderer struct{}

// NestedDissection returns the default Orderer: recursive graph bisection
// via breadth-first level sets from a pseudo-peripheral vertex.
func NestedDissection() Orderer {
	return nestedDissectionOrderer{}
}

func (nestedDissectionOrderer) Order(c *pattern.CSC) ([]int, error) {
	n := c.N
	if n == 0 {
		return nil, ErrEmptyGraph
	}
	if n == 1 {
		return []int{0}, nil
	}

	adj := buildAdjacency(c)
	alive := make([]bool, n)
	for i := range alive {
		alive[i] = true
	}
	vertices := make([]int, n)
	for i := range vertices {
		vertices[i] = i
	}

	order := nestedDissection(adj, alive, vertices)

	// order[k] is the original vertex placed at position k; Orderer returns
	// perm with the same meaning, matching pattern.NewPermutation's contract.
	return order, nil
}

// userOrderer wraps a permutation supplied directly by the caller.
type userOrderer struct {
	perm []int
}

// FromPermutation returns an Orderer that always yields perm, after
// validating it is a genuine permutation of the matrix's dimension.
func FromPermutation(perm []int) Orderer {
	return userOrderer{perm: perm}
}

func (u userOrderer) Order(c *pattern.CSC) ([]int, error) {
	if err := pattern.Validate(u.perm, c.N); err != nil {
		return nil, ErrBadPermutation
	}
	return append([]int(nil), u.perm...), nil
}

// Identity returns an Orderer that leaves column order unchanged.
func Identity() Orderer {
	return identityOrderer{}
}

type identityOrderer struct{}

func (identityOrderer) Order(c *pattern.CSC) ([]int, error) {
	perm := make([]int, c.N)
	for i := range perm {
		perm[i] = i
	}
	return perm, nil
}
