// Package pkg provides the core libraries for isobench, a graph isomorphism
// benchmark.
//
// # Overview
//
// isobench decides whether two undirected graphs are isomorphic and measures
// how long the decision takes over datasets of graph6 files. Trees take a
// fast path through AHU encodings rooted at their centers; every other graph
// goes through canonical labeling. The pkg directory is organized into four
// main areas:
//
//  1. [graph], [tree], [canon], [iso] - Domain logic (graph model, tree
//     validation, centers, encodings, canonical forms, the checker)
//  2. [io], [generate] - Datasets (graph6 files, directory layouts, random
//     graph families, format conversion)
//  3. [pipeline], [results] - Orchestration (measure every file, export CSV,
//     JSON and MongoDB)
//  4. [cache], [server], [observability], [render] - Infrastructure
//
// # Architecture
//
// The typical data flow of a benchmark run:
//
//	graph6 dataset directory
//	         ↓
//	    [io] package (scan layout, read graphs)
//	         ↓
//	    [pipeline] package (all pairs per file, timed, cached)
//	         ↓
//	    [iso] package (tree fast path or canonical labeling)
//	         ↓
//	    [results] package (CSV, JSON, MongoDB)
//
// # Quick Start
//
// Decide whether two graphs are isomorphic:
//
//	import (
//	    "github.com/matzehuels/isobench/pkg/graph"
//	    "github.com/matzehuels/isobench/pkg/iso"
//	)
//
//	a := graph.MustParseGraph6("Ch")
//	b := graph.MustParseGraph6("Cs")
//	v := iso.New().Check(a, b)
//	fmt.Println(v.Isomorphic, v.Method) // false tree
//
// Benchmark a dataset:
//
//	runner := pipeline.NewRunner(nil, nil, logger)
//	defer runner.Close()
//	res, err := runner.Execute(ctx, pipeline.Options{Dataset: "data/trees"})
//	if err != nil {
//	    return err
//	}
//	results.ExportCSV("results.csv", res)
//
// # Main Packages
//
// ## Domain Logic
//
// [graph] - Simple undirected graphs on vertices 0..n-1 with sorted adjacency
// lists, plus graph6 encoding through gonum.
//
// [tree] - Tree validation, center location by leaf peeling, and AHU
// encodings. [tree.Isomorphic] compares two trees by their center encodings.
//
// [canon] - Canonical labeling by individualization and refinement.
// [canon.Form] is equal for two graphs exactly when they are isomorphic.
//
// [iso] - The checker used everywhere else. It picks the tree fast path when
// both graphs are trees and reports which method decided the pair.
//
// ## Datasets
//
// [io] - Reading and writing graph6 files, dataset directory layouts
// (isomorphic/ and non_isomorphic/), and conversion from adjacency matrices
// and edge lists.
//
// [generate] - Random graph families (trees, paths, cycles, regular and
// bipartite graphs, cacti) and isomorphic and non-isomorphic sets of them.
//
// ## Orchestration
//
// [pipeline] - Measures every pair of graphs per file with a bounded worker
// pool, verifies verdicts against the directory a file is in, and caches
// measurements by file content.
//
// [results] - CSV export in the node_count, average_time, is_isomorphic
// format, JSON, and a MongoDB sink for run history.
//
// ## Infrastructure
//
// [cache] - File, Redis and null caches behind one interface. Keys come from a
// [cache.Keyer] and can be scoped per host.
//
// [server] - HTTP API for checks, encodings and canonical forms (chi).
//
// [observability] - Hooks for checks, files, cache and HTTP, with a
// Prometheus implementation.
//
// [render] - Node-link diagrams through Graphviz, converted to PDF and PNG.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                  # All tests
//	go test ./pkg/tree/...             # Specific package
//	go test -run Example ./pkg/...     # Examples only
//
// Redis and MongoDB tests run when ISOBENCH_REDIS_ADDR and ISOBENCH_MONGO_URI
// are set.
//
// [graph]: https://pkg.go.dev/github.com/matzehuels/isobench/pkg/graph
// [tree]: https://pkg.go.dev/github.com/matzehuels/isobench/pkg/tree
// [canon]: https://pkg.go.dev/github.com/matzehuels/isobench/pkg/canon
// [iso]: https://pkg.go.dev/github.com/matzehuels/isobench/pkg/iso
// [io]: https://pkg.go.dev/github.com/matzehuels/isobench/pkg/io
// [generate]: https://pkg.go.dev/github.com/matzehuels/isobench/pkg/generate
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/isobench/pkg/pipeline
// [results]: https://pkg.go.dev/github.com/matzehuels/isobench/pkg/results
// [cache]: https://pkg.go.dev/github.com/matzehuels/isobench/pkg/cache
// [server]: https://pkg.go.dev/github.com/matzehuels/isobench/pkg/server
// [observability]: https://pkg.go.dev/github.com/matzehuels/isobench/pkg/observability
// [render]: https://pkg.go.dev/github.com/matzehuels/isobench/pkg/render
package pkg
