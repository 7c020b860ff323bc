package tree

import "errors"

var (
	// ErrNotTree is returned when an operation that requires a tree is given a
	// graph that is not one. It is always accompanied by one of the reason
	// errors below, so both errors.Is(err, ErrNotTree) and
	// errors.Is(err, ErrCycle) may hold for the same error.
	ErrNotTree = errors.New("precondition violated: input is not a tree")

	// ErrEmpty reports a graph with no vertices.
	ErrEmpty = errors.New("graph has no vertices")

	// ErrCycle reports a graph containing a cycle.
	ErrCycle = errors.New("graph contains a cycle")

	// ErrDisconnected reports a graph with more than one connected component.
	ErrDisconnected = errors.New("graph is disconnected")
)
