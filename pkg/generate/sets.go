package generate

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/matzehuels/isobench/pkg/canon"
	errs "github.com/matzehuels/isobench/pkg/errors"
	"github.com/matzehuels/isobench/pkg/graph"
	"github.com/matzehuels/isobench/pkg/tree"
)

// Shuffle returns g under a uniformly random relabeling.
func Shuffle(g *graph.Graph, rng *rand.Rand) *graph.Graph {
	out, err := g.Relabel(rng.Perm(g.Order()))
	if err != nil {
		// rng.Perm is always a valid permutation of the right length
		panic(err)
	}
	return out
}

// IsomorphicSet draws one graph and returns it followed by size-1 shuffled
// copies.
func IsomorphicSet(kind Kind, n int, p Params, size int, rng *rand.Rand) ([]*graph.Graph, error) {
	if err := errs.ValidatePositive("set size", size); err != nil {
		return nil, err
	}
	base, err := Generate(kind, n, p, rng)
	if err != nil {
		return nil, err
	}
	return Duplicates(base, size, rng), nil
}

// Duplicates returns base followed by size-1 shuffled copies of it.
func Duplicates(base *graph.Graph, size int, rng *rand.Rand) []*graph.Graph {
	out := make([]*graph.Graph, 0, max(size, 1))
	out = append(out, base)
	for len(out) < size {
		out = append(out, Shuffle(base, rng))
	}
	return out
}

// NonIsomorphicSet draws graphs until it holds size pairwise non-isomorphic
// ones. Families with fewer isomorphism classes than size (paths, cycles,
// small n) fail with ErrConstructFailed after maxDraws draws.
func NonIsomorphicSet(kind Kind, n int, p Params, size, maxDraws int, rng *rand.Rand) ([]*graph.Graph, error) {
	if err := errs.ValidatePositive("set size", size); err != nil {
		return nil, err
	}
	if maxDraws < size {
		maxDraws = size
	}

	seen := make(map[string]bool, size)
	out := make([]*graph.Graph, 0, size)
	for draw := 0; draw < maxDraws && len(out) < size; draw++ {
		g, err := Generate(kind, n, p, rng)
		if err != nil {
			return nil, err
		}
		key := Form(g)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, g)
	}
	if len(out) < size {
		return nil, fmt.Errorf("%w: found %d of %d non-isomorphic %s graphs on %d vertices in %d draws",
			ErrConstructFailed, len(out), size, kind, n, maxDraws)
	}
	return out, nil
}

// Form returns an isomorphism-class key for g. Trees are keyed by their
// smallest center encoding, other graphs by their canonical form.
func Form(g *graph.Graph) string {
	t, err := tree.From(g)
	if err != nil {
		return "g:" + canon.Form(g)
	}
	var encs []string
	for _, c := range t.Centers() {
		enc, _ := t.Encode(c)
		encs = append(encs, enc)
	}
	return "t:" + slices.Min(encs)
}
