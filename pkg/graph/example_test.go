package graph_test

import (
	"fmt"

	"github.com/matzehuels/isobench/pkg/graph"
)

func ExampleNew() {
	// A path 0-1-2-3
	g, err := graph.New(4, []graph.Edge{{0, 1}, {1, 2}, {2, 3}})
	if err != nil {
		panic(err)
	}

	fmt.Println("Order:", g.Order())
	fmt.Println("Size:", g.Size())
	fmt.Println("Neighbors of 1:", g.Neighbors(1))
	// Output:
	// Order: 4
	// Size: 3
	// Neighbors of 1: [0 2]
}

func ExampleParseGraph6() {
	g, err := graph.ParseGraph6("Bg")
	if err != nil {
		panic(err)
	}
	fmt.Println(g.Edges())
	// Output:
	// [[0 1] [1 2]]
}
