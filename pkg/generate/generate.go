package generate

import (
	"fmt"
	"math/rand/v2"

	errs "github.com/matzehuels/isobench/pkg/errors"
	"github.com/matzehuels/isobench/pkg/graph"
)

// Generate draws a graph of the given kind on n vertices.
// Invalid parameters yield INVALID_INPUT errors.
func Generate(kind Kind, n int, p Params, rng *rand.Rand) (*graph.Graph, error) {
	switch kind {
	case KindTree:
		return Tree(n, rng)
	case KindPath:
		return Path(n)
	case KindStar:
		return Star(n)
	case KindCycle:
		return Cycle(n)
	case KindComplete:
		return Complete(n)
	case KindCompleteBipartite:
		return CompleteBipartite(n, rng)
	case KindBipartite:
		return Bipartite(n, p.Density, rng)
	case KindRandom:
		return Random(n, p.Density, rng)
	case KindRegular:
		return Regular(n, p.Degree, rng)
	case KindRegularBipartite:
		return RegularBipartite(n, p.Degree, rng)
	case KindCactus:
		return Cactus(n, rng)
	default:
		return nil, errs.New(errs.ErrCodeInvalidInput, "unknown graph kind %q", kind)
	}
}

func atLeast(kind Kind, n, min int) error {
	if n < min {
		return errs.New(errs.ErrCodeInvalidInput, "%s needs at least %d vertices, got %d", kind, min, n)
	}
	return nil
}

// Tree returns a uniformly random labeled tree on n vertices, decoded from a
// random Prüfer sequence.
func Tree(n int, rng *rand.Rand) (*graph.Graph, error) {
	if err := atLeast(KindTree, n, 1); err != nil {
		return nil, err
	}
	if n == 1 {
		return graph.New(1, nil)
	}
	if n == 2 {
		return graph.New(2, []graph.Edge{{0, 1}})
	}

	seq := make([]int, n-2)
	degree := make([]int, n)
	for i := range degree {
		degree[i] = 1
	}
	for i := range seq {
		seq[i] = rng.IntN(n)
		degree[seq[i]]++
	}

	// Linear-time decoding: ptr scans for the smallest leaf, and a vertex
	// that becomes a leaf below ptr is consumed immediately.
	edges := make([]graph.Edge, 0, n-1)
	ptr := 0
	for degree[ptr] != 1 {
		ptr++
	}
	leaf := ptr
	for _, v := range seq {
		edges = append(edges, graph.Edge{leaf, v})
		degree[v]--
		if degree[v] == 1 && v < ptr {
			leaf = v
			continue
		}
		ptr++
		for degree[ptr] != 1 {
			ptr++
		}
		leaf = ptr
	}
	edges = append(edges, graph.Edge{leaf, n - 1})
	return graph.New(n, edges)
}

// Path returns the path 0-1-...-(n-1).
func Path(n int) (*graph.Graph, error) {
	if err := atLeast(KindPath, n, 1); err != nil {
		return nil, err
	}
	edges := make([]graph.Edge, 0, n-1)
	for i := 1; i < n; i++ {
		edges = append(edges, graph.Edge{i - 1, i})
	}
	return graph.New(n, edges)
}

// Star returns the star with center 0.
func Star(n int) (*graph.Graph, error) {
	if err := atLeast(KindStar, n, 1); err != nil {
		return nil, err
	}
	edges := make([]graph.Edge, 0, n-1)
	for i := 1; i < n; i++ {
		edges = append(edges, graph.Edge{0, i})
	}
	return graph.New(n, edges)
}

// Cycle returns the cycle on n ≥ 3 vertices.
func Cycle(n int) (*graph.Graph, error) {
	if err := atLeast(KindCycle, n, 3); err != nil {
		return nil, err
	}
	edges := make([]graph.Edge, n)
	for i := range n {
		edges[i] = graph.Edge{i, (i + 1) % n}
	}
	return graph.New(n, edges)
}

// Complete returns K_n.
func Complete(n int) (*graph.Graph, error) {
	if err := atLeast(KindComplete, n, 1); err != nil {
		return nil, err
	}
	edges := make([]graph.Edge, 0, n*(n-1)/2)
	for u := range n {
		for v := u + 1; v < n; v++ {
			edges = append(edges, graph.Edge{u, v})
		}
	}
	return graph.New(n, edges)
}

// CompleteBipartite returns K_{p,n-p} for a uniformly chosen 1 ≤ p < n.
func CompleteBipartite(n int, rng *rand.Rand) (*graph.Graph, error) {
	if err := atLeast(KindCompleteBipartite, n, 2); err != nil {
		return nil, err
	}
	p := 1 + rng.IntN(n-1)
	edges := make([]graph.Edge, 0, p*(n-p))
	for u := range p {
		for v := p; v < n; v++ {
			edges = append(edges, graph.Edge{u, v})
		}
	}
	return graph.New(n, edges)
}

// Bipartite splits a random permutation of the vertices at a random point
// and adds every cross edge with probability density.
func Bipartite(n int, density float64, rng *rand.Rand) (*graph.Graph, error) {
	if err := atLeast(KindBipartite, n, 2); err != nil {
		return nil, err
	}
	if err := errs.ValidateProbability("density", density); err != nil {
		return nil, err
	}
	vs := rng.Perm(n)
	split := 1 + rng.IntN(n-1)
	var edges []graph.Edge
	for _, u := range vs[:split] {
		for _, v := range vs[split:] {
			if rng.Float64() < density {
				edges = append(edges, graph.Edge{u, v})
			}
		}
	}
	return graph.New(n, edges)
}

// Random returns a G(n, p) graph.
func Random(n int, p float64, rng *rand.Rand) (*graph.Graph, error) {
	if err := atLeast(KindRandom, n, 1); err != nil {
		return nil, err
	}
	if err := errs.ValidateProbability("density", p); err != nil {
		return nil, err
	}
	var edges []graph.Edge
	for u := range n {
		for v := u + 1; v < n; v++ {
			if rng.Float64() < p {
				edges = append(edges, graph.Edge{u, v})
			}
		}
	}
	return graph.New(n, edges)
}

// Regular returns a random d-regular graph. Stubs are paired uniformly at
// random among the pairs that keep the graph simple; a dead end restarts the
// pairing, up to maxAttempts times.
func Regular(n, d int, rng *rand.Rand) (*graph.Graph, error) {
	if err := atLeast(KindRegular, n, 1); err != nil {
		return nil, err
	}
	if d < 0 || d >= n {
		return nil, errs.New(errs.ErrCodeInvalidInput, "regular degree must be in [0, %d), got %d", n, d)
	}
	if n*d%2 != 0 {
		return nil, errs.New(errs.ErrCodeInvalidInput, "degree * n must be even (n=%d, d=%d)", n, d)
	}

	for range maxAttempts {
		if edges, ok := pairStubs(n, d, rng); ok {
			return graph.New(n, edges)
		}
	}
	return nil, fmt.Errorf("%w: no %d-regular graph on %d vertices after %d attempts",
		ErrConstructFailed, d, n, maxAttempts)
}

// pairStubs runs one attempt of the pairing model.
func pairStubs(n, d int, rng *rand.Rand) ([]graph.Edge, bool) {
	stubs := make([]int, 0, n*d)
	for v := range n {
		for range d {
			stubs = append(stubs, v)
		}
	}
	seen := make(map[graph.Edge]bool, n*d/2)
	edges := make([]graph.Edge, 0, n*d/2)

	for len(stubs) > 0 {
		// Rejection sampling of a suitable pair, with a bounded number of
		// draws before declaring a dead end.
		found := false
		for try := 0; try < 4*len(stubs)+16; try++ {
			i, j := rng.IntN(len(stubs)), rng.IntN(len(stubs))
			u, v := stubs[i], stubs[j]
			if i == j || u == v {
				continue
			}
			e := graph.Edge{min(u, v), max(u, v)}
			if seen[e] {
				continue
			}
			seen[e] = true
			edges = append(edges, e)
			if i < j {
				i, j = j, i
			}
			stubs[i] = stubs[len(stubs)-1]
			stubs = stubs[:len(stubs)-1]
			stubs[j] = stubs[len(stubs)-1]
			stubs = stubs[:len(stubs)-1]
			found = true
			break
		}
		if !found {
			return nil, false
		}
	}
	return edges, true
}

// RegularBipartite returns a random d-regular bipartite graph with sides
// {0..n/2-1} and {n/2..n-1}, built with the pairing model restricted to
// left-right pairs.
func RegularBipartite(n, d int, rng *rand.Rand) (*graph.Graph, error) {
	if err := atLeast(KindRegularBipartite, n, 2); err != nil {
		return nil, err
	}
	if n%2 != 0 {
		return nil, errs.New(errs.ErrCodeInvalidInput, "regular bipartite graphs need an even vertex count, got %d", n)
	}
	half := n / 2
	if d < 1 || d > half {
		return nil, errs.New(errs.ErrCodeInvalidInput, "regular bipartite degree must be in [1, %d], got %d", half, d)
	}

	for range maxAttempts {
		if edges, ok := pairSides(half, d, rng); ok {
			return graph.New(n, edges)
		}
	}
	return nil, fmt.Errorf("%w: no %d-regular bipartite graph on %d vertices after %d attempts",
		ErrConstructFailed, d, n, maxAttempts)
}

// pairSides runs one attempt of the bipartite pairing model.
func pairSides(half, d int, rng *rand.Rand) ([]graph.Edge, bool) {
	left := make([]int, 0, half*d)
	right := make([]int, 0, half*d)
	for v := range half {
		for range d {
			left = append(left, v)
			right = append(right, half+v)
		}
	}
	seen := make(map[graph.Edge]bool, half*d)
	edges := make([]graph.Edge, 0, half*d)

	for len(left) > 0 {
		found := false
		for try := 0; try < 4*len(left)+16; try++ {
			i, j := rng.IntN(len(left)), rng.IntN(len(right))
			e := graph.Edge{left[i], right[j]}
			if seen[e] {
				continue
			}
			seen[e] = true
			edges = append(edges, e)
			left[i] = left[len(left)-1]
			left = left[:len(left)-1]
			right[j] = right[len(right)-1]
			right = right[:len(right)-1]
			found = true
			break
		}
		if !found {
			return nil, false
		}
	}
	return edges, true
}

// Cactus grows a random cactus from vertex 0. Each step attaches either a
// pendant edge or a new cycle through an existing vertex.
func Cactus(n int, rng *rand.Rand) (*graph.Graph, error) {
	if err := atLeast(KindCactus, n, 1); err != nil {
		return nil, err
	}
	var edges []graph.Edge
	next := 1
	for next < n {
		base := rng.IntN(next)
		remaining := n - next
		if remaining < 2 || rng.IntN(2) == 0 {
			edges = append(edges, graph.Edge{base, next})
			next++
			continue
		}
		// a cycle through base and k new vertices, 2 ≤ k ≤ remaining
		k := 2 + rng.IntN(remaining-1)
		edges = append(edges, graph.Edge{base, next})
		for i := range k - 1 {
			edges = append(edges, graph.Edge{next + i, next + i + 1})
		}
		edges = append(edges, graph.Edge{next + k - 1, base})
		next += k
	}
	return graph.New(n, edges)
}
