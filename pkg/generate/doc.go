// Package generate builds random benchmark graphs and writes datasets.
//
// Every generator takes an explicit *rand.Rand so datasets are reproducible
// from a seed. Supported kinds:
//
//	tree                uniform random labeled tree (Prüfer sequence)
//	path, star, cycle   fixed shapes
//	complete            complete graph K_n
//	complete_bipartite  K_{p,n-p} with a random split
//	bipartite           random split, each cross edge with probability density
//	random              Erdős–Rényi G(n, density)
//	regular             random degree-regular graph (pairing model)
//	regular_bipartite   random degree-regular bipartite graph on n/2 + n/2 vertices
//	cactus              random cactus: every edge lies on at most one cycle
//
// [IsomorphicSet] produces one base graph and randomly relabeled copies of
// it; [NonIsomorphicSet] keeps drawing graphs until it has the requested
// number of pairwise non-isomorphic ones. [WriteDataset] sweeps a range of
// vertex counts and writes both sets in the layout read by package io.
package generate
