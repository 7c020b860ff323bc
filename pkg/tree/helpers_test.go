package tree

import (
	"math/rand/v2"
	"slices"

	"github.com/matzehuels/isobench/pkg/graph"
)

// randomTree attaches every vertex i > 0 to a uniformly chosen earlier vertex.
func randomTree(rng *rand.Rand, n int) *graph.Graph {
	edges := make([]graph.Edge, 0, n)
	for i := 1; i < n; i++ {
		edges = append(edges, graph.Edge{rng.IntN(i), i})
	}
	return graph.MustNew(n, edges)
}

// randomGraph returns a G(n,p) random graph.
func randomGraph(rng *rand.Rand, n int, p float64) *graph.Graph {
	var edges []graph.Edge
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if rng.Float64() < p {
				edges = append(edges, graph.Edge{u, v})
			}
		}
	}
	return graph.MustNew(n, edges)
}

// shuffleNeighbors rebuilds g with every neighbor list randomly permuted.
func shuffleNeighbors(rng *rand.Rand, g *graph.Graph) *graph.Graph {
	adj := make([][]int, g.Order())
	for v := range adj {
		adj[v] = slices.Clone(g.Neighbors(v))
		rng.Shuffle(len(adj[v]), func(i, j int) { adj[v][i], adj[v][j] = adj[v][j], adj[v][i] })
	}
	out, err := graph.FromAdjacency(adj)
	if err != nil {
		panic(err)
	}
	return out
}

// relabel applies a random permutation to g.
func relabel(rng *rand.Rand, g *graph.Graph) *graph.Graph {
	out, err := g.Relabel(rng.Perm(g.Order()))
	if err != nil {
		panic(err)
	}
	return out
}

// distances returns BFS distances from src; unreachable vertices get -1.
func distances(g *graph.Graph, src int) []int {
	dist := make([]int, g.Order())
	for i := range dist {
		dist[i] = -1
	}
	dist[src] = 0
	queue := []int{src}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, w := range g.Neighbors(v) {
			if dist[w] < 0 {
				dist[w] = dist[v] + 1
				queue = append(queue, w)
			}
		}
	}
	return dist
}

func connected(g *graph.Graph) bool {
	if g.Order() == 0 {
		return false
	}
	return !slices.Contains(distances(g, 0), -1)
}

// minEccentricity returns the vertices of minimum eccentricity, ascending.
func minEccentricity(g *graph.Graph) []int {
	best := g.Order()
	var out []int
	for v := range g.Order() {
		ecc := slices.Max(distances(g, v))
		switch {
		case ecc < best:
			best = ecc
			out = []int{v}
		case ecc == best:
			out = append(out, v)
		}
	}
	return out
}

func path(n int) *graph.Graph {
	edges := make([]graph.Edge, 0, n)
	for i := 1; i < n; i++ {
		edges = append(edges, graph.Edge{i - 1, i})
	}
	return graph.MustNew(n, edges)
}

func star(n int) *graph.Graph {
	edges := make([]graph.Edge, 0, n)
	for i := 1; i < n; i++ {
		edges = append(edges, graph.Edge{0, i})
	}
	return graph.MustNew(n, edges)
}
