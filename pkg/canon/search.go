package canon

import (
	"encoding/binary"
	"slices"
	"strings"

	"github.com/matzehuels/isobench/pkg/graph"
)

// searcher holds the state of one canonical labeling search.
type searcher struct {
	g   *graph.Graph
	n   int
	adj []bool // n*n adjacency matrix

	first     []int // vertex order of the first leaf
	firstSeq  []int // individualized vertices on the path to the first leaf
	firstCert string

	best     []int
	bestCert string

	autos [][]int // automorphisms discovered so far, as vertex maps
}

func newSearcher(g *graph.Graph) *searcher {
	n := g.Order()
	adj := make([]bool, n*n)
	for u := range n {
		for _, v := range g.Neighbors(u) {
			adj[u*n+v] = true
		}
	}
	return &searcher{g: g, n: n, adj: adj}
}

func (s *searcher) run() {
	var p partition
	if s.n > 0 {
		all := make([]int, s.n)
		for v := range all {
			all[v] = v
		}
		p = partition{all}
	}
	s.search(s.refine(p), nil, nil)
}

// search explores the subtree below the node with partition p, reached by
// individualizing seq. trace records the position of each individualized
// vertex in the final order.
//
// A non-negative return value asks the caller to unwind to that level.
func (s *searcher) search(p partition, seq, trace []int) int {
	level := len(seq)
	if p.discrete() {
		return s.leaf(p.flatten(), seq, trace)
	}

	ti := p.target()
	cell := slices.Clone(p[ti])
	slices.Sort(cell)
	pos := p.offset(ti)

	var explored []int
	var orbits []int
	seenAutos := -1
	for _, v := range cell {
		if len(s.autos) != seenAutos {
			orbits = s.orbits(seq)
			seenAutos = len(s.autos)
		}
		if sameOrbit(orbits, v, explored) {
			continue
		}
		explored = append(explored, v)

		child := s.refine(p.individualize(ti, v))
		jump := s.search(child, append(slices.Clip(seq), v), append(slices.Clip(trace), pos))
		if jump >= 0 && jump < level {
			return jump
		}
	}
	return -1
}

// leaf compares a discrete partition against the first and best leaves.
func (s *searcher) leaf(lab, seq, trace []int) int {
	cert := s.cert(lab, trace)

	switch {
	case s.first == nil:
		s.first, s.firstSeq, s.firstCert = lab, slices.Clone(seq), cert
		s.best, s.bestCert = lab, cert
	case cert == s.firstCert:
		s.autos = append(s.autos, mapping(s.first, lab))
		return commonPrefix(seq, s.firstSeq)
	case cert == s.bestCert:
		s.autos = append(s.autos, mapping(s.best, lab))
	case cert < s.bestCert:
		s.best, s.bestCert = lab, cert
	}
	return -1
}

// cert encodes order, trace and the upper triangle of the adjacency matrix
// under the vertex order lab. Fixed-width big-endian integers keep the
// string comparison consistent with the numeric one.
func (s *searcher) cert(lab, trace []int) string {
	n := s.n
	var b strings.Builder
	b.Grow(8 + 4*len(trace) + (n*(n-1)/2+7)/8)

	var word [4]byte
	writeInt := func(x int) {
		binary.BigEndian.PutUint32(word[:], uint32(x))
		b.Write(word[:])
	}
	writeInt(n)
	writeInt(len(trace))
	for _, t := range trace {
		writeInt(t)
	}

	var cur byte
	k := 0
	for j := 1; j < n; j++ {
		row := lab[j] * n
		for i := 0; i < j; i++ {
			if s.adj[row+lab[i]] {
				cur |= 1 << (7 - k%8)
			}
			k++
			if k%8 == 0 {
				b.WriteByte(cur)
				cur = 0
			}
		}
	}
	if k%8 != 0 {
		b.WriteByte(cur)
	}
	return b.String()
}

// orbits returns a union-find forest of the orbits of the group generated by
// the known automorphisms that fix every vertex of seq.
func (s *searcher) orbits(seq []int) []int {
	parent := make([]int, s.n)
	for v := range parent {
		parent[v] = v
	}
	for _, a := range s.autos {
		if !fixes(a, seq) {
			continue
		}
		for v, w := range a {
			union(parent, v, w)
		}
	}
	return parent
}

// mapping returns the vertex map sending from[i] to to[i].
func mapping(from, to []int) []int {
	m := make([]int, len(from))
	for i, v := range from {
		m[v] = to[i]
	}
	return m
}

func fixes(auto, seq []int) bool {
	for _, v := range seq {
		if auto[v] != v {
			return false
		}
	}
	return true
}

func sameOrbit(parent []int, v int, explored []int) bool {
	rv := find(parent, v)
	for _, u := range explored {
		if find(parent, u) == rv {
			return true
		}
	}
	return false
}

func find(parent []int, v int) int {
	for parent[v] != v {
		parent[v] = parent[parent[v]]
		v = parent[v]
	}
	return v
}

func union(parent []int, a, b int) {
	ra, rb := find(parent, a), find(parent, b)
	if ra != rb {
		parent[ra] = rb
	}
}

func commonPrefix(a, b []int) int {
	n := min(len(a), len(b))
	for i := range n {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}
