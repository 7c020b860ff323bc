package cli

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	errs "github.com/matzehuels/isobench/pkg/errors"
	"github.com/matzehuels/isobench/pkg/generate"
	"github.com/matzehuels/isobench/pkg/graph"
	gio "github.com/matzehuels/isobench/pkg/io"
)

// defaultDuplicateSetSize is the set size of the duplicate command.
const defaultDuplicateSetSize = 3

// convertCommand creates the convert command for importing other formats.
func (c *CLI) convertCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert adjacency matrices and edge lists to graph6",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "adjacency [input-dir] [output-dir]",
		Short: "Convert every .txt adjacency matrix in a directory",
		Long: `Convert every .txt adjacency matrix in a directory.

Each file holds one matrix row per line as a string of 0 and 1 digits.
input-dir/name.txt is written to output-dir/name.g6. Files that fail to
convert are reported and skipped.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.convertDir(args[0], args[1], ".txt", gio.ReadAdjacency)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "edges [input-file] [output-dir]",
		Short: "Convert a Boltzmann sampler edge list",
		Long: fmt.Sprintf(`Convert a Boltzmann sampler edge list.

The first line of the input is sampler information and is skipped. The graph
is written to output-dir/<n>.g6 where n is its vertex count. Graphs with more
than %d vertices are skipped.`, gio.MaxEdgeListOrder),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.convertEdges(args[0], args[1])
		},
	})

	return cmd
}

// convertDir converts every file with extension ext in in to a graph6 file in out.
func (c *CLI) convertDir(in, out, ext string, read func(io.Reader) (*graph.Graph, error)) error {
	entries, err := os.ReadDir(in)
	if err != nil {
		return errs.Wrap(errs.ErrCodeFileNotFound, err, "input directory %s", in)
	}

	converted, failed := 0, 0
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ext {
			continue
		}
		base := strings.TrimSuffix(e.Name(), ext)
		g, err := readGraphFile(filepath.Join(in, e.Name()), read)
		if err == nil {
			err = gio.ExportFile(filepath.Join(out, base+gio.Ext), []*graph.Graph{g})
		}
		if err != nil {
			failed++
			printError("%s: %s", e.Name(), errs.UserMessage(err))
			continue
		}
		converted++
		c.Logger.Debug("converted", "file", e.Name(), "vertices", g.Order())
	}

	printSuccess("Converted %d files", converted)
	if failed > 0 {
		printWarning("%d files failed", failed)
	}
	printDetail("Directory: %s", out)
	return nil
}

func (c *CLI) convertEdges(in, out string) error {
	g, err := readGraphFile(in, gio.ConvertEdgeList)
	if errs.Is(err, errs.ErrCodeUnsupported) {
		printWarning("Skipped %s: %s", in, errs.UserMessage(err))
		return nil
	}
	if err != nil {
		return err
	}
	path := filepath.Join(out, gio.FileName(g.Order()))
	if err := gio.ExportFile(path, []*graph.Graph{g}); err != nil {
		return err
	}
	printSuccess("Converted %s", in)
	printFile(path)
	return nil
}

func readGraphFile(path string, read func(io.Reader) (*graph.Graph, error)) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "open %s", path)
	}
	defer f.Close()
	return read(f)
}

// duplicateCommand creates the duplicate command for building isomorphic sets
// from existing graphs.
func (c *CLI) duplicateCommand() *cobra.Command {
	var (
		setSize = defaultDuplicateSetSize
		seed    = generate.DefaultSeed
	)

	cmd := &cobra.Command{
		Use:   "duplicate [input-dir] [output-dir]",
		Short: "Turn single graphs into isomorphic sets",
		Long: `Turn single graphs into isomorphic sets.

For every .g6 file in input-dir, the first graph and set-size - 1 randomly
relabeled copies of it are written to the file of the same name in
output-dir. The output is a valid isomorphic set for "bench".`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errs.ValidatePositive("set size", setSize); err != nil {
				return err
			}
			return c.runDuplicate(args[0], args[1], setSize, seed)
		},
	}

	cmd.Flags().IntVarP(&setSize, "set-size", "s", setSize, "graphs per output file")
	cmd.Flags().Uint64Var(&seed, "seed", seed, "random seed")

	return cmd
}

func (c *CLI) runDuplicate(in, out string, setSize int, seed uint64) error {
	entries, err := os.ReadDir(in)
	if err != nil {
		return errs.Wrap(errs.ErrCodeFileNotFound, err, "input directory %s", in)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == gio.Ext {
			names = append(names, e.Name())
		}
	}
	slices.Sort(names)

	rng := rand.New(rand.NewPCG(seed, uint64(len(names))))
	written := 0
	for _, name := range names {
		gs, err := gio.ImportFile(filepath.Join(in, name))
		if err == nil && len(gs) == 0 {
			err = errs.New(errs.ErrCodeInvalidInput, "no graphs")
		}
		if err == nil {
			err = gio.ExportFile(filepath.Join(out, name), generate.Duplicates(gs[0], setSize, rng))
		}
		if err != nil {
			printError("%s: %s", name, errs.UserMessage(err))
			continue
		}
		written++
	}

	printSuccess("Wrote %d sets of %d graphs", written, setSize)
	printDetail("Directory: %s", out)
	return nil
}
