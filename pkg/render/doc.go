// Package render converts rendered graphs between output formats.
//
// Layout happens in [nodelink], which turns a graph into DOT and SVG through
// an embedded Graphviz. This package owns the [Format] names accepted on the
// command line and the SVG to PDF and PNG conversion, which shells out to
// rsvg-convert:
//
//	svg, err := nodelink.RenderSVG(ctx, nodelink.ToDOT(g, nodelink.Options{}))
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, render.DefaultScale)
//
// Without rsvg-convert on PATH the conversions fail with an UNSUPPORTED
// error.
//
// [nodelink]: https://pkg.go.dev/github.com/matzehuels/isobench/pkg/render/nodelink
package render
