// Package graph provides the undirected graph model shared by every isobench
// component.
//
// A [Graph] has a fixed vertex set 0..n-1 and one neighbor slice per vertex.
// Edges are undirected: an edge (u, v) places v in u's neighbor list and u in
// v's. Self-loops and duplicate edges are rejected at construction time, and a
// Graph is never mutated afterwards, so it can be shared freely between
// goroutines that only read it.
//
// # Construction
//
//	g, err := graph.New(4, []graph.Edge{{0, 1}, {1, 2}, {2, 3}})
//
// [FromAdjacency] builds a graph from neighbor lists and additionally checks
// that the lists are symmetric.
//
// # Serialization
//
// The on-disk dataset format is graph6, one graph per line. [ParseGraph6] and
// [Graph.Graph6] convert between the compact encoding and a Graph using the
// gonum graph6 codec. For the HTTP API a Graph also marshals to a small JSON
// node-link form:
//
//	{"order": 3, "edges": [[0, 1], [1, 2]]}
package graph
