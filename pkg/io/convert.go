package io

import (
	"bufio"
	"io"
	"slices"
	"strconv"
	"strings"

	errs "github.com/matzehuels/isobench/pkg/errors"
	"github.com/matzehuels/isobench/pkg/graph"
)

// MaxEdgeListOrder is the largest graph ConvertEdgeList accepts. Larger
// samples are rejected with UNSUPPORTED so batch conversions can skip them.
const MaxEdgeListOrder = 2000

// ReadAdjacency parses an adjacency matrix written one row per line as a
// string of 0 and 1 digits without separators. Blank lines are skipped.
// The matrix must be square and symmetric with a zero diagonal.
func ReadAdjacency(r io.Reader) (*graph.Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var rows []string
	for sc.Scan() {
		if row := strings.TrimSpace(sc.Text()); row != "" {
			rows = append(rows, row)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidFormat, err, "read matrix")
	}

	n := len(rows)
	adj := make([][]int, n)
	for i, row := range rows {
		if len(row) != n {
			return nil, errs.New(errs.ErrCodeInvalidFormat, "row %d has %d entries, want %d", i+1, len(row), n)
		}
		for j := range n {
			switch row[j] {
			case '0':
			case '1':
				adj[i] = append(adj[i], j)
			default:
				return nil, errs.New(errs.ErrCodeInvalidFormat, "row %d: invalid entry %q", i+1, row[j])
			}
		}
	}
	g, err := graph.FromAdjacency(adj)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidGraph, err, "adjacency matrix")
	}
	return g, nil
}

// ReadEdgeList parses the edge list written by Boltzmann samplers: a first
// line with sampler information, then one "u v" pair per line, terminated
// by "0 0". Lines starting with '#' are comments. Vertex labels may be any
// integers; they are renumbered 0..n-1 in ascending order. Repeated edges
// are merged.
func ReadEdgeList(r io.Reader) (*graph.Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, errs.Wrap(errs.ErrCodeInvalidFormat, err, "read edge list")
		}
		return nil, errs.New(errs.ErrCodeInvalidFormat, "empty edge list")
	}

	type pair struct{ u, v int }
	var pairs []pair
	labels := map[int]struct{}{}
	line := 1
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") || strings.HasPrefix(text, "0 0") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 2 {
			return nil, errs.New(errs.ErrCodeInvalidFormat, "line %d: invalid edge %q", line, text)
		}
		u, errU := strconv.Atoi(fields[0])
		v, errV := strconv.Atoi(fields[1])
		if errU != nil || errV != nil {
			return nil, errs.New(errs.ErrCodeInvalidFormat, "line %d: invalid edge %q", line, text)
		}
		pairs = append(pairs, pair{u, v})
		labels[u] = struct{}{}
		labels[v] = struct{}{}
	}
	if err := sc.Err(); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidFormat, err, "read after line %d", line)
	}

	order := make([]int, 0, len(labels))
	for l := range labels {
		order = append(order, l)
	}
	slices.Sort(order)
	index := make(map[int]int, len(order))
	for i, l := range order {
		index[l] = i
	}

	seen := make(map[graph.Edge]bool, len(pairs))
	edges := make([]graph.Edge, 0, len(pairs))
	for _, p := range pairs {
		u, v := index[p.u], index[p.v]
		if u > v {
			u, v = v, u
		}
		e := graph.Edge{u, v}
		if seen[e] {
			continue
		}
		seen[e] = true
		edges = append(edges, e)
	}
	g, err := graph.New(len(order), edges)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidGraph, err, "edge list")
	}
	return g, nil
}

// ConvertEdgeList reads an edge list and checks it against MaxEdgeListOrder.
func ConvertEdgeList(r io.Reader) (*graph.Graph, error) {
	g, err := ReadEdgeList(r)
	if err != nil {
		return nil, err
	}
	if g.Order() > MaxEdgeListOrder {
		return nil, errs.New(errs.ErrCodeUnsupported, "graph has %d vertices, limit is %d", g.Order(), MaxEdgeListOrder)
	}
	return g, nil
}
