package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/isobench/pkg/graph"
	"github.com/matzehuels/isobench/pkg/render"
	"github.com/matzehuels/isobench/pkg/tree"
)

// Options controls the generated DOT source.
type Options struct {
	// Detailed adds the degree below each vertex index.
	Detailed bool

	// Title becomes the graph label.
	Title string
}

var graphAttrs = []string{
	"rankdir=TB",
	`bgcolor="transparent"`,
	"node [shape=circle, style=filled, fillcolor=white, fontsize=18, width=0.5]",
	"ranksep=0.5",
	"nodesep=0.3",
}

// ToDOT writes g as an undirected Graphviz graph. If g is a tree its centers
// are filled gold and its edges are listed breadth-first from the first
// center, which makes dot lay it out rooted there.
func ToDOT(g *graph.Graph, opts Options) string {
	var b strings.Builder
	line := func(format string, args ...any) {
		b.WriteString("  ")
		fmt.Fprintf(&b, format, args...)
		b.WriteString(";\n")
	}

	b.WriteString("graph G {\n")
	for _, a := range graphAttrs {
		line("%s", a)
	}
	if opts.Title != "" {
		line("label=%q", opts.Title)
	}
	b.WriteString("\n")

	isCenter := make([]bool, g.Order())
	edges := g.Edges()
	if t, err := tree.From(g); err == nil {
		cs := t.Centers()
		for _, c := range cs {
			isCenter[c] = true
		}
		edges = bfsEdges(g, cs[0])
	}

	for v := range g.Order() {
		label := strconv.Itoa(v)
		if opts.Detailed {
			label += "\ndeg: " + strconv.Itoa(g.Degree(v))
		}
		attrs := "label=" + strconv.Quote(label)
		if isCenter[v] {
			attrs += ", fillcolor=gold, penwidth=2"
		}
		line("%q [%s]", strconv.Itoa(v), attrs)
	}
	b.WriteString("\n")
	for _, e := range edges {
		line("%q -- %q", strconv.Itoa(e.U()), strconv.Itoa(e.V()))
	}
	b.WriteString("}\n")
	return b.String()
}

// bfsEdges returns the edges of a tree as (parent, child) pairs in
// breadth-first order from root.
func bfsEdges(g *graph.Graph, root int) []graph.Edge {
	out := make([]graph.Edge, 0, g.Size())
	visited := make([]bool, g.Order())
	visited[root] = true
	for queue := []int{root}; len(queue) > 0; queue = queue[1:] {
		v := queue[0]
		for _, w := range g.Neighbors(v) {
			if !visited[w] {
				visited[w] = true
				out = append(out, graph.Edge{v, w})
				queue = append(queue, w)
			}
		}
	}
	return out
}

// RenderSVG lays out dot with the embedded Graphviz and returns SVG with a
// viewBox starting at the origin.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("graphviz: %w", err)
	}
	defer gv.Close()

	parsed, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse dot: %w", err)
	}
	defer parsed.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, parsed, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgOpenTag = regexp.MustCompile(`<svg[^>]*>`)
	viewBox    = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces the root element so that width and height match
// the viewBox and the box starts at 0,0. Graphviz emits points with a
// translated origin, which some viewers crop.
func normalizeViewBox(svg []byte) []byte {
	m := viewBox.FindSubmatch(svg)
	if m == nil {
		return svg
	}
	w, _ := strconv.ParseFloat(string(m[3]), 64)
	h, _ := strconv.ParseFloat(string(m[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}
	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`, w, h, w, h)
	return svgOpenTag.ReplaceAll(svg, []byte(root))
}

// Render turns dot into format. DOT is returned unchanged; PDF and PNG go
// through SVG and rsvg-convert, PNG zoomed by scale.
func Render(ctx context.Context, dot string, format render.Format, scale float64) ([]byte, error) {
	if format == render.FormatDOT {
		return []byte(dot), nil
	}
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	switch format {
	case render.FormatSVG:
		return svg, nil
	case render.FormatPDF:
		return render.ToPDF(ctx, svg)
	case render.FormatPNG:
		return render.ToPNG(ctx, svg, scale)
	}
	return nil, fmt.Errorf("unsupported format %q", format)
}
