// Package io reads and writes benchmark datasets.
//
// # Overview
//
// A dataset is a directory of graph6 files, one file per vertex count:
//
//	dataset/
//	  isomorphic/
//	    10.g6
//	    20.g6
//	  non_isomorphic/
//	    10.g6
//	    20.g6
//
// Every file holds one graph per line. All graphs in a file under
// isomorphic/ belong to the same isomorphism class; all graphs in a file
// under non_isomorphic/ are pairwise non-isomorphic. When a dataset has no
// isomorphic/ directory, the root itself is treated as the isomorphic set.
//
// # graph6 files
//
// Use [ImportFile] to read a file, or [ReadGraphs] to read from any
// io.Reader:
//
//	gs, err := io.ImportFile("dataset/isomorphic/10.g6")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Blank lines and the optional ">>graph6<<" header are skipped. Decoding
// errors carry the 1-based line number that caused them.
//
// Use [ExportFile] or [WriteGraphs] to write graphs back out. ExportFile
// creates missing parent directories.
//
// # JSON
//
// [WriteJSON] and [ReadJSON] exchange a list of graphs in the node-link form
// produced by graph.Graph's MarshalJSON, for tools that do not speak graph6.
//
// # Directory scanning
//
// [ScanDir] lists the "<n>.g6" files of a directory ordered by vertex count,
// and [ResolveLayout] locates the isomorphic and non-isomorphic sets under a
// dataset root.
package io
