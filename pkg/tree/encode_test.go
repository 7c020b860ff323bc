package tree

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/isobench/pkg/graph"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		g    *graph.Graph
		root int
		want string
	}{
		{"SingleVertex", graph.MustNew(1, nil), 0, "()"},
		{"Edge", graph.MustNew(2, []graph.Edge{{0, 1}}), 0, "(())"},
		{"Path3Middle", path(3), 1, "(()())"},
		{"Path3End", path(3), 0, "((()))"},
		{"StarHub", star(4), 0, "(()()())"},
		{"StarLeaf", star(4), 2, "((()()))"},
		// children "()" and "(())" sort as "(())" < "()"
		{"MixedChildren", graph.MustNew(4, []graph.Edge{{0, 1}, {0, 2}, {2, 3}}), 0, "((())())"},
		{"MixedChildrenReversed", graph.MustNew(4, []graph.Edge{{2, 3}, {0, 2}, {0, 1}}), 0, "((())())"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(tt.g, tt.root)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeRootOutOfRange(t *testing.T) {
	tr, err := From(path(3))
	require.NoError(t, err)

	_, err = tr.Encode(3)
	assert.ErrorIs(t, err, graph.ErrVertexOutOfRange)
	_, err = tr.Encode(-1)
	assert.ErrorIs(t, err, graph.ErrVertexOutOfRange)
}

func TestEncodeNotTree(t *testing.T) {
	_, err := Encode(graph.MustNew(4, []graph.Edge{{0, 1}, {2, 3}}), 0)
	assert.ErrorIs(t, err, ErrNotTree)
}

// Reordering neighbor lists must not change any rooted encoding.
func TestEncodeNeighborOrderInvariance(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 8))
	for i := 0; i < 100; i++ {
		g := randomTree(rng, 1+rng.IntN(30))
		h := shuffleNeighbors(rng, g)

		tg, err := From(g)
		require.NoError(t, err)
		th, err := From(h)
		require.NoError(t, err)

		for root := range g.Order() {
			eg, _ := tg.Encode(root)
			eh, _ := th.Encode(root)
			require.Equal(t, eg, eh, "root %d of %s", root, g.Graph6())
		}
	}
}

func TestEncodeBalanced(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 10))
	g := randomTree(rng, 200)
	enc, err := Encode(g, 0)
	require.NoError(t, err)

	assert.Len(t, enc, 2*g.Order())
	assert.Equal(t, g.Order(), strings.Count(enc, "("))
}

func TestEncodeDeepPath(t *testing.T) {
	const n = 5000
	enc, err := Encode(path(n), 0)
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("(", n)+strings.Repeat(")", n), enc)
}
