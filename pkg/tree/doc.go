// Package tree decides isomorphism of trees in time linear in the number of
// vertices.
//
// The package provides the fast path of the isomorphism benchmark. Given two
// graphs that are both trees, it locates the center(s) of each tree, encodes
// each tree rooted at its centers with the Aho-Hopcroft-Ullman (AHU) scheme,
// and compares the encodings. Graphs that are not trees must be handled by a
// general canonical-labeling engine such as [github.com/matzehuels/isobench/pkg/canon].
//
// # Validation
//
// [IsTree] and [Validate] check that a graph is connected and acyclic. A graph
// with no vertices is not a tree. [From] wraps a validated graph in a [Tree];
// holding a *Tree is proof that validation passed, so the methods on Tree
// never see a cyclic or disconnected graph.
//
// # Centers
//
// [Tree.Centers] peels leaves layer by layer until one or two vertices remain.
// Two centers are always adjacent and occur exactly when the tree's diameter
// is odd.
//
// # Encoding
//
// [Tree.Encode] produces the AHU string of the tree rooted at a vertex: a leaf
// is "()", an inner vertex is "(" followed by its children's encodings in
// lexicographic order followed by ")". Equal strings denote isomorphic rooted
// trees. The encoder walks the tree with an explicit stack, so very deep trees
// do not grow the goroutine stack.
//
// # Comparison
//
//	a, _ := tree.From(g1)
//	b, _ := tree.From(g2)
//	if tree.Isomorphic(a, b) {
//	    // g1 and g2 are isomorphic trees
//	}
//
// All functions are pure: inputs are only read, and every buffer is owned by
// the call that allocates it. Independent comparisons may run concurrently.
package tree
