package graph

import "errors"

var (
	// ErrNegativeOrder is returned when a graph is requested with fewer than zero vertices.
	ErrNegativeOrder = errors.New("graph order must not be negative")

	// ErrVertexOutOfRange is returned when an edge or permutation references a
	// vertex outside 0..n-1.
	ErrVertexOutOfRange = errors.New("vertex out of range")

	// ErrSelfLoop is returned for an edge (v, v). Self-loops are not supported.
	ErrSelfLoop = errors.New("self-loops are not supported")

	// ErrDuplicateEdge is returned when the same undirected edge appears twice.
	ErrDuplicateEdge = errors.New("duplicate edge")

	// ErrAsymmetric is returned by [FromAdjacency] when v is listed as a
	// neighbor of u but not the other way round.
	ErrAsymmetric = errors.New("adjacency lists are not symmetric")

	// ErrInvalidPermutation is returned by [Graph.Relabel] when the mapping is
	// not a bijection on 0..n-1.
	ErrInvalidPermutation = errors.New("invalid permutation")

	// ErrInvalidGraph6 is returned by [ParseGraph6] for malformed input.
	ErrInvalidGraph6 = errors.New("invalid graph6 string")
)

// Edge is an undirected edge between two vertex ids.
// The zero-based ids must lie in 0..n-1 of the graph they belong to.
type Edge [2]int

// U returns the first endpoint.
func (e Edge) U() int { return e[0] }

// V returns the second endpoint.
func (e Edge) V() int { return e[1] }

// normalized returns the edge with the smaller endpoint first.
func (e Edge) normalized() Edge {
	if e[0] > e[1] {
		return Edge{e[1], e[0]}
	}
	return e
}

// wireGraph is the JSON node-link form of a Graph.
type wireGraph struct {
	Order int    `json:"order" bson:"order"`
	Edges []Edge `json:"edges" bson:"edges"`
}
