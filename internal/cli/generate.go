package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/matzehuels/isobench/pkg/generate"
)

// Default vertex range of the generate command.
const (
	defaultGenerateStart = 10
	defaultGenerateEnd   = 100
	defaultGenerateStep  = 10
)

// generateCommand creates the generate command for building datasets.
func (c *CLI) generateCommand() *cobra.Command {
	var kind string
	spec := generate.Spec{
		Kind:    generate.KindTree,
		Params:  generate.DefaultParams(),
		Start:   defaultGenerateStart,
		End:     defaultGenerateEnd,
		Step:    defaultGenerateStep,
		SetSize: generate.DefaultSetSize,
		Seed:    generate.DefaultSeed,
		Workers: 1,
	}

	kindNames := make([]string, 0, len(generate.Kinds()))
	for _, k := range generate.Kinds() {
		kindNames = append(kindNames, string(k))
	}

	cmd := &cobra.Command{
		Use:   "generate [dir]",
		Short: "Generate a benchmark dataset",
		Long: `Generate a benchmark dataset.

For every vertex count n in start, start+step, ..., end the command writes
dir/isomorphic/<n>.g6 with one random graph and set-size - 1 relabeled
copies, and dir/non_isomorphic/<n>.g6 with set-size pairwise non-isomorphic
graphs of the same kind. Sizes for which a kind cannot produce a set (for
example fewer distinct paths than set-size) are skipped with a warning.

Kinds: ` + strings.Join(kindNames, ", "),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gc := c.Config.Generate
			if err := applyConfig(cmd, map[string]any{
				"kind":            gc.Kind,
				"start":           gc.Start,
				"end":             gc.End,
				"step":            gc.Step,
				"set-size":        gc.SetSize,
				"density":         gc.Density,
				"degree":          gc.Degree,
				"seed":            gc.Seed,
				"workers":         gc.Workers,
				"only-isomorphic": gc.OnlyIsomorphic,
			}); err != nil {
				return err
			}
			k, err := generate.ParseKind(kind)
			if err != nil {
				return err
			}
			spec.Kind = k
			return c.runGenerate(cmd.Context(), args[0], spec)
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", string(spec.Kind), "graph family")
	cmd.Flags().IntVar(&spec.Start, "start", spec.Start, "smallest vertex count")
	cmd.Flags().IntVar(&spec.End, "end", spec.End, "largest vertex count")
	cmd.Flags().IntVar(&spec.Step, "step", spec.Step, "vertex count increment")
	cmd.Flags().IntVarP(&spec.SetSize, "set-size", "s", spec.SetSize, "graphs per file")
	cmd.Flags().Float64Var(&spec.Params.Density, "density", spec.Params.Density, "edge probability (random, bipartite)")
	cmd.Flags().IntVar(&spec.Params.Degree, "degree", spec.Params.Degree, "vertex degree (regular, regular_bipartite)")
	cmd.Flags().Uint64Var(&spec.Seed, "seed", spec.Seed, "random seed")
	cmd.Flags().IntVarP(&spec.Workers, "workers", "w", spec.Workers, "vertex counts generated concurrently")
	cmd.Flags().BoolVar(&spec.OnlyIsomorphic, "only-isomorphic", false, "skip the non_isomorphic set")
	_ = cmd.RegisterFlagCompletionFunc("kind", completeKinds)

	return cmd
}

func (c *CLI) runGenerate(ctx context.Context, dir string, spec generate.Spec) error {
	spec.Logger = loggerFromContext(ctx)
	prog := newProgress(spec.Logger)

	sum, err := generate.WriteDataset(ctx, dir, spec)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Generated %s %s graphs", humanize.Comma(int64(sum.Graphs)), spec.Kind))

	printSuccess("Wrote %d files", len(sum.Files))
	printDetail("Directory: %s", dir)
	if len(sum.Skipped) > 0 {
		printWarning("Skipped vertex counts: %v", sum.Skipped)
	}
	printNewline()
	printNextStep("Benchmark", appName+" bench "+dir)
	return nil
}
