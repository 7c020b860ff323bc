package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGraph6(t *testing.T) {
	g, err := ParseGraph6("H@BQPS^")
	require.NoError(t, err)

	assert.Equal(t, 9, g.Order())
	assert.Equal(t, []int{5}, g.Neighbors(0))
	assert.Equal(t, []int{3, 4, 5, 6, 7}, g.Neighbors(8))
	assert.Equal(t, 14, g.Size())
}

func TestParseGraph6Header(t *testing.T) {
	g, err := ParseGraph6(">>graph6<<Bg\n")
	require.NoError(t, err)
	assert.Equal(t, []Edge{{0, 1}, {1, 2}}, g.Edges())
}

func TestParseGraph6Invalid(t *testing.T) {
	for _, in := range []string{"", "   ", "B", "!!"} {
		_, err := ParseGraph6(in)
		assert.ErrorIs(t, err, ErrInvalidGraph6, "input %q", in)
	}
}

func TestGraph6Encode(t *testing.T) {
	tests := []struct {
		name string
		g    *Graph
		want string
	}{
		{"K2", MustNew(2, []Edge{{0, 1}}), "A_"},
		{"P3", MustNew(3, []Edge{{1, 2}, {0, 1}}), "Bg"},
		{"Single", MustNew(1, nil), "@"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.g.Graph6())
		})
	}
}

func TestGraph6RoundTrip(t *testing.T) {
	g := MustNew(6, []Edge{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 0}, {0, 3}})

	back, err := ParseGraph6(g.Graph6())
	require.NoError(t, err)
	assert.Equal(t, g.Edges(), back.Edges())
}
