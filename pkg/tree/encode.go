package tree

import (
	"fmt"
	"slices"
	"strings"

	"github.com/matzehuels/isobench/pkg/graph"
)

// Leaf is the encoding of a single vertex without children.
const Leaf = "()"

// Encode returns the AHU encoding of the tree rooted at root.
// It returns an error wrapping graph.ErrVertexOutOfRange if root is not a
// vertex of the tree.
func (t *Tree) Encode(root int) (string, error) {
	if root < 0 || root >= t.g.Order() {
		return "", fmt.Errorf("root %d: %w", root, graph.ErrVertexOutOfRange)
	}
	return t.encode(root), nil
}

// encode runs a post-order traversal with an explicit stack. When a vertex
// has no neighbors left to visit, all of its children are encoded: their
// strings are sorted, wrapped in one pair of parentheses, and handed to the
// parent's accumulator.
func (t *Tree) encode(root int) string {
	g := t.g
	children := make([][]string, g.Order())

	var out string
	stack := []frame{{v: root, parent: -1}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		nbrs := g.Neighbors(top.v)
		if top.next < len(nbrs) {
			w := nbrs[top.next]
			top.next++
			if w != top.parent {
				stack = append(stack, frame{v: w, parent: top.v})
			}
			continue
		}

		s := wrap(children[top.v])
		children[top.v] = nil
		parent := top.parent
		stack = stack[:len(stack)-1]

		if parent < 0 {
			out = s
		} else {
			children[parent] = append(children[parent], s)
		}
	}
	return out
}

// wrap sorts the child encodings and encloses their concatenation in
// parentheses. Sorting makes the result independent of neighbor order.
func wrap(kids []string) string {
	if len(kids) == 0 {
		return Leaf
	}
	slices.Sort(kids)

	size := 2
	for _, k := range kids {
		size += len(k)
	}
	var b strings.Builder
	b.Grow(size)
	b.WriteByte('(')
	for _, k := range kids {
		b.WriteString(k)
	}
	b.WriteByte(')')
	return b.String()
}

// Encode validates g and returns its AHU encoding rooted at root.
func Encode(g *graph.Graph, root int) (string, error) {
	t, err := From(g)
	if err != nil {
		return "", err
	}
	return t.Encode(root)
}
