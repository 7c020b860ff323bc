package tree

import "github.com/matzehuels/isobench/pkg/graph"

// Isomorphic reports whether a and b are isomorphic.
//
// Trees of different order are never isomorphic. Otherwise each tree is
// encoded once per center and the trees are isomorphic iff some encoding of
// a equals some encoding of b. A tree's encoding is only independent of the
// labeling when the root is a center, and with two centers the match may
// appear in one pairing only, so all (at most four) pairs are tried. Each
// encoding of b is computed at most once.
func Isomorphic(a, b *Tree) bool {
	if a.Order() != b.Order() {
		return false
	}

	ca, cb := a.Centers(), b.Centers()
	encB := make([]string, len(cb))
	done := make([]bool, len(cb))

	for _, c := range ca {
		ea := a.encode(c)
		for j, d := range cb {
			if !done[j] {
				encB[j] = b.encode(d)
				done[j] = true
			}
			if ea == encB[j] {
				return true
			}
		}
	}
	return false
}

// TreesIsomorphic validates both graphs and reports whether they are
// isomorphic trees. The error wraps ErrNotTree if either input is not a tree.
func TreesIsomorphic(g1, g2 *graph.Graph) (bool, error) {
	a, err := From(g1)
	if err != nil {
		return false, err
	}
	b, err := From(g2)
	if err != nil {
		return false, err
	}
	return Isomorphic(a, b), nil
}
