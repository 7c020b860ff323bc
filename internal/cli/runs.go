package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	errs "github.com/matzehuels/isobench/pkg/errors"
	"github.com/matzehuels/isobench/pkg/results"
)

// defaultRunsLimit is the number of runs listed by "runs list".
const defaultRunsLimit = 10

// runsCommand creates the runs command for browsing results stored in MongoDB.
func (c *CLI) runsCommand() *cobra.Command {
	var mongoURI string

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Browse benchmark runs stored in MongoDB",
		Long: `Browse benchmark runs stored in MongoDB.

Runs are stored by "bench --mongo-uri". The URI defaults to the
[results.mongo] uri setting of the config file.`,
	}
	cmd.PersistentFlags().StringVar(&mongoURI, "mongo-uri", "", "MongoDB URI")

	open := func(cmd *cobra.Command) (*results.MongoSink, error) {
		if err := applyConfig(cmd, map[string]any{
			"mongo-uri": c.Config.Results.Mongo.URI,
		}); err != nil {
			return nil, err
		}
		if mongoURI == "" {
			return nil, errs.New(errs.ErrCodeInvalidInput, "no MongoDB URI (use --mongo-uri or [results.mongo] uri)")
		}
		mcfg := c.Config.Results.Mongo
		mcfg.URI = mongoURI
		return results.NewMongoSink(cmd.Context(), mcfg)
	}

	var limit int64
	listCmd := &cobra.Command{
		Use:   "list [dataset]",
		Short: "List the most recent runs of a dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errs.ValidatePositive("limit", int(limit)); err != nil {
				return err
			}
			sink, err := open(cmd)
			if err != nil {
				return err
			}
			defer sink.Close(context.Background())
			return c.runRunsList(cmd.Context(), sink, filepath.Clean(args[0]), limit)
		},
	}
	listCmd.Flags().Int64VarP(&limit, "limit", "n", defaultRunsLimit, "maximum number of runs")

	var output string
	showCmd := &cobra.Command{
		Use:   "show [run-id]",
		Short: "Print a stored run, optionally exporting it as CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sink, err := open(cmd)
			if err != nil {
				return err
			}
			defer sink.Close(context.Background())

			res, err := sink.Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printMeasurements("Isomorphic", res.Isomorphic)
			if res.NonIsomorphic != nil {
				printNewline()
				printMeasurements("Non-isomorphic", res.NonIsomorphic)
			}
			printNewline()
			printKeyValue("dataset", res.Dataset)
			printKeyValue("started", res.StartedAt.Format(time.RFC3339))
			printStats(res.Stats)
			if output != "" {
				if err := results.ExportCSV(output, res); err != nil {
					return err
				}
				printFile(output)
			}
			return nil
		},
	}
	showCmd.Flags().StringVarP(&output, "output", "o", "", "also write the run as CSV")

	cmd.AddCommand(listCmd, showCmd)
	return cmd
}

func (c *CLI) runRunsList(ctx context.Context, sink *results.MongoSink, dataset string, limit int64) error {
	runs, err := sink.Recent(ctx, dataset, limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		printInfo("No runs stored for %s", dataset)
		return nil
	}
	for _, r := range runs {
		method := "tree fast path"
		if !r.TreeFastPath {
			method = "canonical labeling only"
		}
		fmt.Println(StyleHighlight.Render(r.RunID) + " " + StyleDim.Render(humanize.Time(r.StartedAt)+", "+method))
		printStats(r.Stats)
	}
	return nil
}
