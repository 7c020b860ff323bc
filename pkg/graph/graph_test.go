package graph

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		edges   []Edge
		wantErr error
		size    int
	}{
		{name: "Empty", n: 0},
		{name: "SingleVertex", n: 1},
		{name: "Path", n: 3, edges: []Edge{{0, 1}, {1, 2}}, size: 2},
		{name: "NegativeOrder", n: -1, wantErr: ErrNegativeOrder},
		{name: "OutOfRange", n: 2, edges: []Edge{{0, 2}}, wantErr: ErrVertexOutOfRange},
		{name: "SelfLoop", n: 2, edges: []Edge{{1, 1}}, wantErr: ErrSelfLoop},
		{name: "Duplicate", n: 2, edges: []Edge{{0, 1}, {1, 0}}, wantErr: ErrDuplicateEdge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := New(tt.n, tt.edges)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.n, g.Order())
			assert.Equal(t, tt.size, g.Size())
		})
	}
}

func TestGraphQueries(t *testing.T) {
	g := MustNew(4, []Edge{{0, 1}, {0, 2}, {0, 3}})

	assert.Equal(t, []int{1, 2, 3}, g.Neighbors(0))
	assert.Equal(t, []int{0}, g.Neighbors(2))
	assert.Equal(t, 3, g.Degree(0))
	assert.True(t, g.HasEdge(3, 0))
	assert.False(t, g.HasEdge(1, 2))
	assert.False(t, g.HasEdge(0, 9))
	assert.Equal(t, []int{3, 1, 1, 1}, g.DegreeSequence())
	assert.Equal(t, []Edge{{0, 1}, {0, 2}, {0, 3}}, g.Edges())
	assert.Equal(t, "graph(n=4, m=3)", g.String())
}

func TestFromAdjacency(t *testing.T) {
	g, err := FromAdjacency([][]int{{1}, {0, 2}, {1}})
	require.NoError(t, err)
	assert.Equal(t, 2, g.Size())
	assert.True(t, g.HasEdge(1, 2))

	_, err = FromAdjacency([][]int{{1}, {}})
	assert.ErrorIs(t, err, ErrAsymmetric)

	_, err = FromAdjacency([][]int{{0}})
	assert.ErrorIs(t, err, ErrSelfLoop)

	_, err = FromAdjacency([][]int{{1, 1}, {0}})
	assert.ErrorIs(t, err, ErrDuplicateEdge)

	_, err = FromAdjacency([][]int{{5}})
	assert.ErrorIs(t, err, ErrVertexOutOfRange)
}

func TestFromAdjacencyCopiesInput(t *testing.T) {
	adj := [][]int{{1}, {0}}
	g, err := FromAdjacency(adj)
	require.NoError(t, err)

	adj[0][0] = 7
	assert.Equal(t, []int{1}, g.Neighbors(0))
}

func TestRelabel(t *testing.T) {
	g := MustNew(3, []Edge{{0, 1}, {1, 2}})

	h, err := g.Relabel([]int{2, 0, 1})
	require.NoError(t, err)
	assert.Equal(t, g.Size(), h.Size())
	assert.True(t, h.HasEdge(2, 0))
	assert.True(t, h.HasEdge(0, 1))
	assert.False(t, h.HasEdge(2, 1))

	_, err = g.Relabel([]int{0, 0, 1})
	assert.ErrorIs(t, err, ErrInvalidPermutation)

	_, err = g.Relabel([]int{0, 1})
	assert.ErrorIs(t, err, ErrInvalidPermutation)
}

func TestJSONRoundTrip(t *testing.T) {
	g := MustNew(4, []Edge{{2, 3}, {0, 1}, {1, 2}})

	data, err := json.Marshal(g)
	require.NoError(t, err)
	assert.JSONEq(t, `{"order":4,"edges":[[0,1],[1,2],[2,3]]}`, string(data))

	var back Graph
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, g.Edges(), back.Edges())
	assert.Equal(t, 4, back.Order())
}

func TestUnmarshalJSONValidates(t *testing.T) {
	var g Graph
	err := json.Unmarshal([]byte(`{"order":2,"edges":[[0,0]]}`), &g)
	assert.ErrorIs(t, err, ErrSelfLoop)
}
