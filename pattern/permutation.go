package pattern

// Permutation pairs a permutation with its inverse, satisfying
// Iperm[Perm[k]] = k for all k. Perm[k] = i means original index i is
// placed at position k.
type Permutation struct {
	Perm  []int
	Iperm []int
}

// Identity returns the identity permutation of size n.
func Identity(n int) Permutation {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	return Permutation{Perm: perm, Iperm: append([]int(nil), perm...)}
}

// Validate reports whether perm is a bijection on 0..n-1.
func Validate(perm []int, n int) error {
	if len(perm) != n {
		return wrapf("Validate", ErrDimensionMismatch)
	}
	seen := make([]bool, n)
	for _, p := range perm {
		if p < 0 || p >= n || seen[p] {
			return wrapf("Validate", ErrBadPermutation)
		}
		seen[p] = true
	}
	return nil
}

// Inverse computes iperm such that iperm[perm[k]] = k.
func Inverse(perm []int) []int {
	iperm := make([]int, len(perm))
	for k, i := range perm {
		iperm[i] = k
	}
	return iperm
}

// NewPermutation validates perm and pairs it with its inverse.
func NewPermutation(perm []int) (Permutation, error) {
	if err := Validate(perm, len(perm)); err != nil {
		return Permutation{}, err
	}
	return Permutation{Perm: append([]int(nil), perm...), Iperm: Inverse(perm)}, nil
}

// Compose updates p in place so that it reflects applying the further
// reindexing described by extra (extra[k] is the current position of the
// node placed at new position k), mirroring the reference's repeated
// PermuteVector(perm, postorder) / InversePerm(perm, iperm) pattern used
// after every repermutation stage (postorder, supernode relaxation).
func (p *Permutation) Compose(extra []int) {
	newPerm := make([]int, len(p.Perm))
	for k, i := range extra {
		newPerm[k] = p.Perm[i]
	}
	p.Perm = newPerm
	p.Iperm = Inverse(newPerm)
}
