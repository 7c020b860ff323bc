package graph

import (
	"fmt"
	"strings"

	gonumgraph "gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding/graph6"
	"gonum.org/v1/gonum/graph/simple"
)

// Graph6Header is the optional header that may precede graph6 data.
const Graph6Header = ">>graph6<<"

// ParseGraph6 decodes a single graph6 string. Surrounding whitespace and the
// optional ">>graph6<<" header are ignored. Neighbor lists are sorted by id.
func ParseGraph6(s string) (*Graph, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), Graph6Header)
	if s == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidGraph6)
	}
	g6 := graph6.Graph(s)
	if !graph6.IsValid(g6) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidGraph6, s)
	}

	n := g6.Nodes().Len()
	g := &Graph{adj: make([][]int, n)}
	for u := 0; u < n; u++ {
		for _, node := range gonumgraph.NodesOf(g6.From(int64(u))) {
			v := int(node.ID())
			g.adj[u] = append(g.adj[u], v)
			if u < v {
				g.size++
			}
		}
	}
	return g, nil
}

// MustParseGraph6 is like [ParseGraph6] but panics on error.
func MustParseGraph6(s string) *Graph {
	g, err := ParseGraph6(s)
	if err != nil {
		panic(err)
	}
	return g
}

// Graph6 returns the graph6 encoding of g without header or newline.
func (g *Graph) Graph6() string {
	return string(graph6.Encode(g.gonum()))
}

// gonum converts g into a gonum undirected graph with node ids 0..n-1.
func (g *Graph) gonum() *simple.UndirectedGraph {
	ug := simple.NewUndirectedGraph()
	for v := range g.adj {
		ug.AddNode(simple.Node(v))
	}
	for _, e := range g.Edges() {
		ug.SetEdge(simple.Edge{F: simple.Node(e.U()), T: simple.Node(e.V())})
	}
	return ug
}
