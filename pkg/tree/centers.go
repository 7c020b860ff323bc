package tree

import (
	"slices"

	"github.com/matzehuels/isobench/pkg/graph"
)

// Centers returns the one or two centers of the tree, in ascending order.
//
// Leaves (vertices of degree at most one) are removed in rounds: removing a
// leaf lowers the degree of its neighbor, and every vertex whose degree drops
// to exactly one becomes a leaf of the next round. The last non-empty round
// is the center set. The computation is iterative and linear in the number of
// vertices.
func (t *Tree) Centers() []int {
	g := t.g
	n := g.Order()

	degree := make([]int, n)
	frontier := make([]int, 0, n)
	for v := range n {
		degree[v] = g.Degree(v)
		if degree[v] <= 1 {
			frontier = append(frontier, v)
		}
	}

	absorbed := len(frontier)
	next := make([]int, 0, n)
	for absorbed < n {
		next = next[:0]
		for _, leaf := range frontier {
			for _, w := range g.Neighbors(leaf) {
				degree[w]--
				if degree[w] == 1 {
					next = append(next, w)
				}
			}
		}
		frontier, next = next, frontier
		absorbed += len(frontier)
	}

	centers := slices.Clone(frontier)
	slices.Sort(centers)
	return centers
}

// Centers validates g and returns its centers. It returns an error wrapping
// ErrNotTree instead of a meaningless answer when g is not a tree.
func Centers(g *graph.Graph) ([]int, error) {
	t, err := From(g)
	if err != nil {
		return nil, err
	}
	return t.Centers(), nil
}
