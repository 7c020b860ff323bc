package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/isobench/pkg/observability"
	"github.com/matzehuels/isobench/pkg/pipeline"
	"github.com/matzehuels/isobench/pkg/results"
)

// defaultBenchOutput is the CSV written by bench when -o is not given.
const defaultBenchOutput = "results.csv"

// benchOpts holds the flags of the bench command that are not pipeline options.
type benchOpts struct {
	output   string // CSV output path
	jsonPath string // optional JSON output path
	mongoURI string // optional MongoDB URI
	noCache  bool   // disable the measurement cache
}

// benchCommand creates the bench command for measuring a dataset.
func (c *CLI) benchCommand() *cobra.Command {
	var bo benchOpts
	opts := pipeline.Options{
		TreeFastPath: true,
		Workers:      pipeline.DefaultWorkers,
	}

	cmd := &cobra.Command{
		Use:   "bench [dataset]",
		Short: "Measure isomorphism checks over a graph6 dataset",
		Long: `Measure isomorphism checks over a graph6 dataset.

The dataset directory holds "<n>.g6" files, either directly or in an
isomorphic/ subdirectory, plus an optional non_isomorphic/ subdirectory.
Every pair of graphs in a file is checked and timed; the average time per
pair is written as CSV with the columns node_count, average_time (seconds)
and is_isomorphic.

A verdict that contradicts the directory a file is in aborts the run.

Measurements are cached by file content. Use --refresh to measure again.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.Config
			if err := applyConfig(cmd, map[string]any{
				"tree-fast-path":  cfg.Bench.TreeFastPath,
				"only-isomorphic": cfg.Bench.OnlyIsomorphic,
				"workers":         cfg.Bench.Workers,
				"output":          cfg.Bench.Output,
				"json":            cfg.Results.JSON,
				"mongo-uri":       cfg.Results.Mongo.URI,
			}); err != nil {
				return err
			}
			opts.Dataset = args[0]
			return c.runBench(cmd.Context(), opts, bo)
		},
	}

	// Output flags
	cmd.Flags().StringVarP(&bo.output, "output", "o", defaultBenchOutput, "CSV output file")
	cmd.Flags().StringVar(&bo.jsonPath, "json", "", "also write the full result as JSON")
	cmd.Flags().StringVar(&bo.mongoURI, "mongo-uri", "", "also store the result in MongoDB")
	cmd.Flags().BoolVar(&bo.noCache, "no-cache", false, "disable caching")

	// Pipeline flags
	cmd.Flags().BoolVar(&opts.TreeFastPath, "tree-fast-path", opts.TreeFastPath, "decide tree pairs with AHU encodings")
	cmd.Flags().BoolVar(&opts.OnlyIsomorphic, "only-isomorphic", false, "skip the non_isomorphic set")
	cmd.Flags().IntVarP(&opts.Workers, "workers", "w", opts.Workers, "files measured concurrently")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "ignore cached measurements")

	return cmd
}

// runBench executes the pipeline and writes the results.
func (c *CLI) runBench(ctx context.Context, opts pipeline.Options, bo benchOpts) error {
	runner, err := c.newRunner(ctx, bo.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = loggerFromContext(ctx)
	prog := newProgress(opts.Logger)

	spinner := newSpinnerWithContext(ctx, "Measuring "+filepath.Base(opts.Dataset)+"...")
	spinner.Start()
	prev := observability.Bench()
	observability.SetBenchHooks(observability.TeeBench(prev, &fileProgress{spinner: spinner}))
	res, err := runner.Execute(ctx, opts)
	observability.SetBenchHooks(prev)
	if err != nil {
		spinner.StopWithError("Benchmark failed")
		return err
	}
	spinner.Stop()
	prog.done("Benchmark complete")

	if err := results.ExportCSV(bo.output, res); err != nil {
		return err
	}
	if bo.jsonPath != "" {
		if err := writeJSONFile(bo.jsonPath, res); err != nil {
			return err
		}
	}
	if bo.mongoURI != "" {
		if err := c.storeResult(ctx, bo.mongoURI, res); err != nil {
			return err
		}
	}

	printMeasurements("Isomorphic", res.Isomorphic)
	if res.NonIsomorphic != nil {
		printNewline()
		printMeasurements("Non-isomorphic", res.NonIsomorphic)
	}
	printNewline()
	printSuccess("Run %s", res.RunID)
	printStats(res.Stats)
	printFile(bo.output)
	if bo.jsonPath != "" {
		printFile(bo.jsonPath)
	}
	return nil
}

func writeJSONFile(path string, res *pipeline.Result) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := results.WriteJSON(f, res); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// storeResult writes res to the MongoDB collection configured in [results.mongo].
func (c *CLI) storeResult(ctx context.Context, uri string, res *pipeline.Result) error {
	mcfg := c.Config.Results.Mongo
	mcfg.URI = uri
	sink, err := results.NewMongoSink(ctx, mcfg)
	if err != nil {
		return err
	}
	defer sink.Close(context.Background())
	if err := sink.Store(ctx, res); err != nil {
		return err
	}
	c.Logger.Info("stored result", "run_id", res.RunID, "collection", mcfg.Collection)
	return nil
}

// fileProgress reports the number of measured files on the spinner line.
type fileProgress struct {
	observability.NoopBenchHooks
	spinner *Spinner
	files   atomic.Int64
}

func (p *fileProgress) OnFileComplete(_ context.Context, _ string, _ int, _ time.Duration, err error) {
	if err != nil {
		return
	}
	n := p.files.Add(1)
	p.spinner.SetDetail(fmt.Sprintf("(%d files)", n))
}
