package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/isobench/pkg/render"
	"github.com/matzehuels/isobench/pkg/render/nodelink"
)

// renderCommand creates the render command for drawing a graph.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output    string
		formatStr string
		scale     float64
		opts      nodelink.Options
	)

	cmd := &cobra.Command{
		Use:   "render [graph]",
		Short: "Render a graph as a node-link diagram",
		Long: `Render a graph as a node-link diagram.

The graph is a graph6 string or file (see "check"). Tree centers are
highlighted. DOT output goes to stdout unless -o is given; SVG, PDF and PNG
need an output file (default: graph.<format>). PDF and PNG require
rsvg-convert from librsvg.`,
		ValidArgsFunction: completeGraphFiles,
		Args:              cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := render.ParseFormat(formatStr)
			if err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], output, format, scale, opts)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file")
	cmd.Flags().StringVarP(&formatStr, "format", "f", string(render.FormatSVG), "output format: dot, svg, pdf, png")
	cmd.Flags().Float64Var(&scale, "scale", render.DefaultScale, "PNG zoom factor")
	cmd.Flags().BoolVar(&opts.Detailed, "detailed", false, "show vertex degrees")
	cmd.Flags().StringVar(&opts.Title, "title", "", "diagram title")
	_ = cmd.RegisterFlagCompletionFunc("format", completeFormats)

	return cmd
}

func (c *CLI) runRender(ctx context.Context, arg, output string, format render.Format, scale float64, opts nodelink.Options) error {
	g, err := loadGraphArg(arg)
	if err != nil {
		return err
	}
	dot := nodelink.ToDOT(g, opts)

	if format == render.FormatDOT && output == "" {
		fmt.Print(dot)
		return nil
	}

	data, err := nodelink.Render(ctx, dot, format, scale)
	if err != nil {
		return fmt.Errorf("render %s: %w", format, err)
	}
	if output == "" {
		output = "graph." + string(format)
	}
	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(output, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	printSuccess("Rendered %s", strings.ToUpper(string(format)))
	printFile(output)
	printDetail(describeGraph(g))
	return nil
}
