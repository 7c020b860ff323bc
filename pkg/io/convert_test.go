package io

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/matzehuels/isobench/pkg/errors"
)

func TestReadAdjacency(t *testing.T) {
	in := "010\n101\n\n010\n"
	g, err := ReadAdjacency(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 3, g.Order())
	assert.Equal(t, 2, g.Size())
	assert.True(t, g.HasEdge(0, 1))
	assert.True(t, g.HasEdge(1, 2))
	assert.False(t, g.HasEdge(0, 2))
}

func TestReadAdjacencyErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		code errs.Code
	}{
		{"not square", "01\n10\n11\n", errs.ErrCodeInvalidFormat},
		{"bad digit", "02\n20\n", errs.ErrCodeInvalidFormat},
		{"asymmetric", "01\n00\n", errs.ErrCodeInvalidGraph},
		{"self loop", "11\n10\n", errs.ErrCodeInvalidGraph},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadAdjacency(strings.NewReader(tt.in))
			require.Error(t, err)
			assert.True(t, errs.Is(err, tt.code), "got %v", err)
		})
	}
}

func TestReadEdgeList(t *testing.T) {
	in := "n=4 sampler info\n# comment\n1 2\n2 3\n3 1\n3 7\n2 1\n0 0\n"
	g, err := ReadEdgeList(strings.NewReader(in))
	require.NoError(t, err)

	// labels 1,2,3,7 become 0,1,2,3 and the repeated edge is merged
	assert.Equal(t, 4, g.Order())
	assert.Equal(t, 4, g.Size())
	assert.True(t, g.HasEdge(2, 3))
	assert.Equal(t, 1, g.Degree(3))
}

func TestReadEdgeListErrors(t *testing.T) {
	for _, in := range []string{"", "header\n1 2 3\n", "header\na b\n", "header\n4 4\n"} {
		_, err := ReadEdgeList(strings.NewReader(in))
		assert.Error(t, err, "input %q", in)
	}
}

func TestConvertEdgeListLimit(t *testing.T) {
	var b strings.Builder
	b.WriteString("star\n")
	for v := 2; v <= MaxEdgeListOrder+1; v++ {
		fmt.Fprintf(&b, "1 %d\n", v)
	}
	_, err := ConvertEdgeList(strings.NewReader(b.String()))
	assert.True(t, errs.Is(err, errs.ErrCodeUnsupported))

	g, err := ConvertEdgeList(strings.NewReader("path\n1 2\n2 3\n0 0\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, g.Order())
}
