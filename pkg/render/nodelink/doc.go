// Package nodelink draws graphs as node-link diagrams.
//
// Vertices are circles labeled with their index, or index and degree when
// [Options].Detailed is set. Trees get their centers filled, and their
// edges are emitted breadth-first from a center so dot places it on top:
//
//	dot := nodelink.ToDOT(g, nodelink.Options{Title: "7 vertices"})
//	png, err := nodelink.Render(ctx, dot, render.FormatPNG, 2)
//
// SVG comes from github.com/goccy/go-graphviz running in-process. PDF and
// PNG additionally need rsvg-convert.
package nodelink
