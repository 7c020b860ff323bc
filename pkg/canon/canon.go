package canon

import (
	"slices"

	"github.com/matzehuels/isobench/pkg/graph"
)

// Label is the result of canonical labeling.
type Label struct {
	// Form is a certificate of the isomorphism class. Two graphs are
	// isomorphic iff their forms are equal.
	Form string

	// Perm lists the vertices in canonical order: Perm[i] is the vertex of
	// the input graph placed at canonical position i.
	Perm []int
}

// Positions returns the inverse of Perm: the canonical position of each vertex.
// It can be passed to graph.Relabel to obtain the canonically labeled graph.
func (l Label) Positions() []int {
	pos := make([]int, len(l.Perm))
	for i, v := range l.Perm {
		pos[v] = i
	}
	return pos
}

// Canonical returns the canonical labeling of g.
func Canonical(g *graph.Graph) Label {
	s := newSearcher(g)
	s.run()
	return Label{Form: s.bestCert, Perm: s.best}
}

// Form returns the canonical form of g. It is shorthand for Canonical(g).Form.
func Form(g *graph.Graph) string {
	return Canonical(g).Form
}

// Isomorphic reports whether a and b are isomorphic. Cheap invariants (order,
// size, degree sequence) are compared before any canonical form is computed.
func Isomorphic(a, b *graph.Graph) bool {
	if a.Order() != b.Order() || a.Size() != b.Size() {
		return false
	}
	if !slices.Equal(a.DegreeSequence(), b.DegreeSequence()) {
		return false
	}
	return Form(a) == Form(b)
}
