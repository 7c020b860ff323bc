package tree

import (
	"fmt"

	"github.com/matzehuels/isobench/pkg/graph"
)

// frame is one entry of an explicit depth-first traversal stack.
type frame struct {
	v      int // current vertex
	parent int // vertex we came from, -1 for the root
	next   int // index of the next neighbor of v to visit
}

// IsTree reports whether g is connected and acyclic. A graph with no vertices
// is not a tree; a single vertex is.
func IsTree(g *graph.Graph) bool {
	return Validate(g) == nil
}

// Validate returns nil if g is a tree. Otherwise the error wraps ErrNotTree
// together with ErrEmpty, ErrCycle or ErrDisconnected.
//
// The check is a depth-first traversal from vertex 0 that remembers the edge
// used to reach each vertex. Meeting an already visited vertex through any
// other edge closes a cycle. Vertices left unvisited afterwards mean the graph
// is disconnected.
func Validate(g *graph.Graph) error {
	n := g.Order()
	if n == 0 {
		return fmt.Errorf("%w: %w", ErrNotTree, ErrEmpty)
	}

	visited := make([]bool, n)
	visited[0] = true
	reached := 1

	stack := []frame{{v: 0, parent: -1}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		nbrs := g.Neighbors(top.v)
		if top.next == len(nbrs) {
			stack = stack[:len(stack)-1]
			continue
		}
		w := nbrs[top.next]
		top.next++

		if !visited[w] {
			visited[w] = true
			reached++
			stack = append(stack, frame{v: w, parent: top.v})
			continue
		}
		if w != top.parent {
			return fmt.Errorf("%w: %w (edge %d-%d)", ErrNotTree, ErrCycle, top.v, w)
		}
	}

	if reached < n {
		return fmt.Errorf("%w: %w (%d of %d vertices reachable)", ErrNotTree, ErrDisconnected, reached, n)
	}
	return nil
}

// Tree is a graph known to be a tree.
//
// The zero value is not usable; obtain a Tree from [From].
type Tree struct {
	g *graph.Graph
}

// From validates g and wraps it in a Tree. The graph is not copied and must
// not be modified while the Tree is in use.
func From(g *graph.Graph) (*Tree, error) {
	if err := Validate(g); err != nil {
		return nil, err
	}
	return &Tree{g: g}, nil
}

// Graph returns the underlying graph.
func (t *Tree) Graph() *graph.Graph { return t.g }

// Order returns the number of vertices of the tree.
func (t *Tree) Order() int { return t.g.Order() }
