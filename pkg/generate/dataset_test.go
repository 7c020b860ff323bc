package generate

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/matzehuels/isobench/pkg/errors"
	gio "github.com/matzehuels/isobench/pkg/io"
)

func TestWriteDataset(t *testing.T) {
	dir := t.TempDir()
	spec := Spec{
		Kind:    KindTree,
		Params:  DefaultParams(),
		Start:   6,
		End:     10,
		Step:    2,
		SetSize: 4,
		Seed:    DefaultSeed,
		Workers: 2,
	}
	sum, err := WriteDataset(context.Background(), dir, spec)
	require.NoError(t, err)
	assert.Empty(t, sum.Skipped)
	assert.Len(t, sum.Files, 6)
	assert.Equal(t, 24, sum.Graphs)

	for _, set := range []string{gio.IsomorphicDir, gio.NonIsomorphicDir} {
		entries, _, err := gio.ScanDir(filepath.Join(dir, set))
		require.NoError(t, err)
		require.Len(t, entries, 3)
		for _, e := range entries {
			gs, err := gio.ImportFile(e.Path)
			require.NoError(t, err)
			assert.Len(t, gs, 4)
			assert.Equal(t, e.NodeCount, gs[0].Order())
		}
	}
}

func TestWriteDatasetReproducible(t *testing.T) {
	spec := Spec{Kind: KindRandom, Params: DefaultParams(), Start: 5, End: 8, Step: 1, SetSize: 3, Seed: 7, OnlyIsomorphic: true}

	a, b := t.TempDir(), t.TempDir()
	_, err := WriteDataset(context.Background(), a, spec)
	require.NoError(t, err)
	spec.Workers = 4
	_, err = WriteDataset(context.Background(), b, spec)
	require.NoError(t, err)

	for n := 5; n <= 8; n++ {
		da, err := os.ReadFile(filepath.Join(a, gio.IsomorphicDir, gio.FileName(n)))
		require.NoError(t, err)
		db, err := os.ReadFile(filepath.Join(b, gio.IsomorphicDir, gio.FileName(n)))
		require.NoError(t, err)
		assert.Equal(t, string(da), string(db))
	}
	_, err = os.Stat(filepath.Join(a, gio.NonIsomorphicDir))
	assert.True(t, os.IsNotExist(err))
}

func TestWriteDatasetSkipsImpossibleSizes(t *testing.T) {
	dir := t.TempDir()
	// every cycle on n vertices is isomorphic to every other one
	spec := Spec{Kind: KindCycle, Start: 4, End: 5, Step: 1, SetSize: 3}
	sum, err := WriteDataset(context.Background(), dir, spec)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 5}, sum.Skipped)
	assert.Len(t, sum.Files, 2)
}

func TestWriteDatasetInvalidSpec(t *testing.T) {
	_, err := WriteDataset(context.Background(), t.TempDir(), Spec{Kind: KindTree, Start: 5, End: 1, Step: 1, SetSize: 1})
	assert.True(t, errs.Is(err, errs.ErrCodeInvalidInput))
}
