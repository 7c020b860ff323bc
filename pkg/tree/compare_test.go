package tree

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/isobench/pkg/graph"
)

func mustTree(t *testing.T, g *graph.Graph) *Tree {
	t.Helper()
	tr, err := From(g)
	require.NoError(t, err)
	return tr
}

func TestIsomorphic(t *testing.T) {
	tests := []struct {
		name string
		a, b *graph.Graph
		want bool
	}{
		{"SingleVertices", graph.MustNew(1, nil), graph.MustNew(1, nil), true},
		{"SingleVsEdge", graph.MustNew(1, nil), graph.MustNew(2, []graph.Edge{{0, 1}}), false},
		{"PathVsStar", path(4), star(4), false},
		{
			// path 0-1-2-3 against the relabeled path 2-0-3-1: two centers each
			name: "Path4Relabeled",
			a:    path(4),
			b:    graph.MustNew(4, []graph.Edge{{2, 0}, {0, 3}, {3, 1}}),
			want: true,
		},
		{
			// same degree sequence, branch points at distance 1 vs 2
			name: "SameDegreeSequence",
			a:    graph.MustNew(8, []graph.Edge{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {1, 6}, {2, 7}}),
			b:    graph.MustNew(8, []graph.Edge{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {1, 6}, {3, 7}}),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Isomorphic(mustTree(t, tt.a), mustTree(t, tt.b)))
			assert.Equal(t, tt.want, Isomorphic(mustTree(t, tt.b), mustTree(t, tt.a)))
		})
	}
}

func TestIsomorphicRelabelInvariance(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 12))
	twoCenters := 0
	for i := 0; i < 300; i++ {
		g := randomTree(rng, 1+rng.IntN(50))
		h := shuffleNeighbors(rng, relabel(rng, g))

		a, b := mustTree(t, g), mustTree(t, h)
		if len(a.Centers()) == 2 {
			twoCenters++
		}
		require.True(t, Isomorphic(a, b), "graph6 %s vs %s", g.Graph6(), h.Graph6())
	}
	assert.Positive(t, twoCenters, "no two-center trees exercised")
}

// Random trees of the same order are compared against a brute-force answer
// obtained by canonical encodings at every root.
func TestIsomorphicDiscrimination(t *testing.T) {
	rng := rand.New(rand.NewPCG(13, 14))
	for i := 0; i < 300; i++ {
		n := 2 + rng.IntN(9)
		a := mustTree(t, randomTree(rng, n))
		b := mustTree(t, randomTree(rng, n))

		assert.Equal(t, bruteForce(a, b), Isomorphic(a, b), "graph6 %s vs %s", a.g.Graph6(), b.g.Graph6())
	}
}

// bruteForce compares the sets of encodings over all roots. Two trees are
// isomorphic iff some rooting of one matches some rooting of the other.
func bruteForce(a, b *Tree) bool {
	seen := make(map[string]bool)
	for r := range a.Order() {
		seen[a.encode(r)] = true
	}
	for r := range b.Order() {
		if seen[b.encode(r)] {
			return true
		}
	}
	return false
}

func TestTreesIsomorphic(t *testing.T) {
	ok, err := TreesIsomorphic(path(5), graph.MustNew(5, []graph.Edge{{4, 3}, {3, 2}, {2, 1}, {1, 0}}))
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = TreesIsomorphic(path(3), graph.MustNew(3, []graph.Edge{{0, 1}, {1, 2}, {2, 0}}))
	assert.ErrorIs(t, err, ErrNotTree)

	_, err = TreesIsomorphic(graph.MustNew(0, nil), path(1))
	assert.ErrorIs(t, err, ErrEmpty)
}
