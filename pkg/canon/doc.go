// Package canon computes canonical forms of general undirected graphs.
//
// It is the general-purpose engine of the isomorphism benchmark: every pair
// of graphs that is not a pair of trees is decided here, and the benchmark's
// correctness checks use it as ground truth.
//
// # Algorithm
//
// The search follows the individualization-refinement scheme used by nauty:
//
//  1. Refine an ordered partition of the vertices until it is equitable: all
//     vertices of a cell have the same number of neighbors in every cell.
//  2. If the partition is not discrete, pick the first smallest non-singleton
//     cell and branch on each of its vertices by placing it in a cell of its
//     own, then refine again.
//  3. Every discrete partition (a leaf) orders the vertices; the leaf's
//     certificate is the adjacency matrix under that order together with the
//     positions of the individualized vertices. The minimum certificate over
//     all leaves is the canonical form.
//
// Two leaves with equal certificates expose an automorphism. Automorphisms
// prune sibling branches in the same orbit, and an automorphism found against
// the first leaf lets the search jump straight back to the level where the
// two paths diverged.
//
// Worst-case running time is exponential, but typical benchmark graphs
// (random, regular, bipartite, cactus) are handled quickly.
package canon
