package etree

import (
	"github.com/katalvlaran/symfact/pattern"
)

// Postorder walks the forest described by parent with an iterative,
// explicit-stack depth-first search, visiting children before their parent
// and siblings in ascending node order, and returns the resulting
// postorder permutation: post[k] is the original index placed at
// position k.
//
// Complexity: O(n).
func Postorder(parent []int) []int {
	n := len(parent)
	head, next := ChildrenLinkedList(parent)

	post := make([]int, 0, n)
	stack := make([]int, 0, n)
	visitedChild := make([]int, n) // next unvisited child for each node on the stack, via head/next cursors
	for i := range visitedChild {
		visitedChild[i] = head[i]
	}

	// Roots are visited in ascending order so ties between independent
	// subtrees resolve deterministically.
	for r := 0; r < n; r++ {
		if parent[r] != -1 {
			continue
		}
		stack = append(stack, r)
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			if c := visitedChild[top]; c != -1 {
				visitedChild[top] = next[c]
				stack = append(stack, c)
				continue
			}
			// All children of top emitted; emit top and pop.
			post = append(post, top)
			stack = stack[:len(stack)-1]
		}
	}

	return post
}

// Rebuild applies a postorder permutation to an elimination tree and its
// owning pattern, returning the new tree and the permutation composed onto
// the running perm/iperm pair, per spec.md §4.5. After Rebuild, Parent[i] is
// either -1 or strictly greater than i for every i.
func Rebuild(t *Tree, c *pattern.CSC, running *pattern.Permutation) (*Tree, error) {
	post := Postorder(t.Parent)

	// iperm[i] = position of original node i in the new (postordered) order.
	iperm := make([]int, len(post))
	for k, i := range post {
		iperm[i] = k
	}

	if err := c.Permute(iperm); err != nil {
		return nil, err
	}

	newParent := make([]int, len(post))
	for k, i := range post {
		p := t.Parent[i]
		if p == -1 {
			newParent[k] = -1
		} else {
			newParent[k] = iperm[p]
		}
	}

	running.Compose(post)

	return &Tree{Parent: newParent}, nil
}
