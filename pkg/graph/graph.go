package graph

import (
	"encoding/json"
	"fmt"
	"slices"
)

// Graph is an immutable undirected simple graph on vertices 0..n-1.
//
// The zero value is an empty graph with no vertices. Use [New] or
// [FromAdjacency] to build a non-empty one.
type Graph struct {
	adj  [][]int
	size int
}

// New builds a graph with n vertices and the given undirected edges.
// Neighbor lists keep the order in which edges were supplied.
//
// It returns ErrNegativeOrder, ErrVertexOutOfRange, ErrSelfLoop or
// ErrDuplicateEdge (wrapped with the offending edge) for invalid input.
func New(n int, edges []Edge) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeOrder, n)
	}
	g := &Graph{adj: make([][]int, n)}
	seen := make(map[Edge]struct{}, len(edges))
	for _, e := range edges {
		u, v := e.U(), e.V()
		if u < 0 || u >= n || v < 0 || v >= n {
			return nil, fmt.Errorf("edge (%d,%d): %w", u, v, ErrVertexOutOfRange)
		}
		if u == v {
			return nil, fmt.Errorf("edge (%d,%d): %w", u, v, ErrSelfLoop)
		}
		key := e.normalized()
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("edge (%d,%d): %w", u, v, ErrDuplicateEdge)
		}
		seen[key] = struct{}{}
		g.adj[u] = append(g.adj[u], v)
		g.adj[v] = append(g.adj[v], u)
	}
	g.size = len(edges)
	return g, nil
}

// MustNew is like [New] but panics on error. Intended for tests and
// package-level fixtures.
func MustNew(n int, edges []Edge) *Graph {
	g, err := New(n, edges)
	if err != nil {
		panic(err)
	}
	return g
}

// FromAdjacency builds a graph from per-vertex neighbor lists. The lists are
// copied. In addition to the checks done by [New], every neighbor relation
// must be mirrored (ErrAsymmetric otherwise).
func FromAdjacency(adj [][]int) (*Graph, error) {
	n := len(adj)
	g := &Graph{adj: make([][]int, n)}
	degreeSum := 0
	for u, nbrs := range adj {
		seen := make(map[int]struct{}, len(nbrs))
		for _, v := range nbrs {
			if v < 0 || v >= n {
				return nil, fmt.Errorf("neighbor %d of %d: %w", v, u, ErrVertexOutOfRange)
			}
			if v == u {
				return nil, fmt.Errorf("neighbor %d of %d: %w", v, u, ErrSelfLoop)
			}
			if _, dup := seen[v]; dup {
				return nil, fmt.Errorf("neighbor %d of %d: %w", v, u, ErrDuplicateEdge)
			}
			seen[v] = struct{}{}
		}
		g.adj[u] = slices.Clone(nbrs)
		degreeSum += len(nbrs)
	}
	for u, nbrs := range g.adj {
		for _, v := range nbrs {
			if !slices.Contains(g.adj[v], u) {
				return nil, fmt.Errorf("%d lists %d: %w", u, v, ErrAsymmetric)
			}
		}
	}
	g.size = degreeSum / 2
	return g, nil
}

// Order returns the number of vertices.
func (g *Graph) Order() int { return len(g.adj) }

// Size returns the number of undirected edges.
func (g *Graph) Size() int { return g.size }

// Neighbors returns the neighbor list of v in storage order.
// The returned slice is shared with the graph and must not be modified.
func (g *Graph) Neighbors(v int) []int { return g.adj[v] }

// Degree returns the number of neighbors of v.
func (g *Graph) Degree(v int) int { return len(g.adj[v]) }

// HasEdge reports whether u and v are adjacent.
func (g *Graph) HasEdge(u, v int) bool {
	if u < 0 || u >= len(g.adj) || v < 0 || v >= len(g.adj) {
		return false
	}
	a, b := g.adj[u], v
	if len(g.adj[v]) < len(a) {
		a, b = g.adj[v], u
	}
	return slices.Contains(a, b)
}

// Edges returns every edge once, smaller endpoint first, sorted.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.size)
	for u, nbrs := range g.adj {
		for _, v := range nbrs {
			if u < v {
				out = append(out, Edge{u, v})
			}
		}
	}
	slices.SortFunc(out, func(a, b Edge) int {
		if a[0] != b[0] {
			return a[0] - b[0]
		}
		return a[1] - b[1]
	})
	return out
}

// DegreeSequence returns the vertex degrees sorted in non-increasing order.
func (g *Graph) DegreeSequence() []int {
	seq := make([]int, len(g.adj))
	for v, nbrs := range g.adj {
		seq[v] = len(nbrs)
	}
	slices.Sort(seq)
	slices.Reverse(seq)
	return seq
}

// Relabel returns the image of g under perm: vertex v of g becomes perm[v].
// Neighbor lists of the result follow the storage order of g.
func (g *Graph) Relabel(perm []int) (*Graph, error) {
	n := len(g.adj)
	if len(perm) != n {
		return nil, fmt.Errorf("%w: length %d, want %d", ErrInvalidPermutation, len(perm), n)
	}
	used := make([]bool, n)
	for _, p := range perm {
		if p < 0 || p >= n || used[p] {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPermutation, perm)
		}
		used[p] = true
	}
	adj := make([][]int, n)
	for v, nbrs := range g.adj {
		mapped := make([]int, len(nbrs))
		for i, w := range nbrs {
			mapped[i] = perm[w]
		}
		adj[perm[v]] = mapped
	}
	return &Graph{adj: adj, size: g.size}, nil
}

// String returns a compact human-readable form, e.g. "graph(n=3, m=2)".
func (g *Graph) String() string {
	return fmt.Sprintf("graph(n=%d, m=%d)", g.Order(), g.Size())
}

// MarshalJSON encodes the graph as {"order": n, "edges": [[u, v], ...]}.
func (g *Graph) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireGraph{Order: g.Order(), Edges: g.Edges()})
}

// UnmarshalJSON decodes the node-link form and validates it like [New].
func (g *Graph) UnmarshalJSON(data []byte) error {
	var w wireGraph
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	parsed, err := New(w.Order, w.Edges)
	if err != nil {
		return err
	}
	*g = *parsed
	return nil
}
