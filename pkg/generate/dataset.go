package generate

import (
	"context"
	"io"
	"math/rand/v2"
	"path/filepath"
	"slices"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	errs "github.com/matzehuels/isobench/pkg/errors"
	gio "github.com/matzehuels/isobench/pkg/io"
)

// Defaults for dataset generation.
const (
	DefaultSetSize = 10
	DefaultSeed    = uint64(42)

	// drawsPerGraph bounds NonIsomorphicSet at drawsPerGraph*size draws.
	drawsPerGraph = 50
)

// Spec describes a dataset to generate.
type Spec struct {
	Kind   Kind
	Params Params

	// Start, End and Step define the vertex counts start, start+step, ... ≤ end.
	Start, End, Step int

	// SetSize is the number of graphs per file.
	SetSize int

	// OnlyIsomorphic skips the non_isomorphic set.
	OnlyIsomorphic bool

	// Seed makes the dataset reproducible. Each vertex count derives its own
	// stream from the seed, so output does not depend on Workers.
	Seed uint64

	// Workers bounds how many vertex counts are generated concurrently.
	Workers int

	Logger *log.Logger
}

// Summary reports what WriteDataset produced.
type Summary struct {
	Files   []string
	Graphs  int
	Skipped []int // vertex counts with at least one set that failed to generate
}

// WriteDataset generates spec into dir/isomorphic and, unless
// OnlyIsomorphic, dir/non_isomorphic. A vertex count whose generation fails
// is logged and skipped; only I/O failures and cancellation abort the run.
func WriteDataset(ctx context.Context, dir string, spec Spec) (*Summary, error) {
	if err := errs.ValidatePath(dir); err != nil {
		return nil, err
	}
	if err := errs.ValidateRange(spec.Start, spec.End, spec.Step); err != nil {
		return nil, err
	}
	if err := errs.ValidatePositive("set size", spec.SetSize); err != nil {
		return nil, err
	}
	if spec.Workers < 1 {
		spec.Workers = 1
	}
	logger := spec.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	var (
		mu  sync.Mutex
		sum Summary
	)
	record := func(path string, graphs int) {
		mu.Lock()
		defer mu.Unlock()
		sum.Files = append(sum.Files, path)
		sum.Graphs += graphs
	}
	skip := func(n int) {
		mu.Lock()
		defer mu.Unlock()
		sum.Skipped = append(sum.Skipped, n)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(spec.Workers)
	for n := spec.Start; n <= spec.End; n += spec.Step {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rng := rand.New(rand.NewPCG(spec.Seed, uint64(n)))

			iso, err := IsomorphicSet(spec.Kind, n, spec.Params, spec.SetSize, rng)
			if err != nil {
				logger.Warn("skipping vertex count", "n", n, "set", gio.IsomorphicDir, "err", err)
				skip(n)
				return nil
			}
			path := filepath.Join(dir, gio.IsomorphicDir, gio.FileName(n))
			if err := gio.ExportFile(path, iso); err != nil {
				return err
			}
			record(path, len(iso))
			logger.Debug("wrote", "path", path, "graphs", len(iso))

			if spec.OnlyIsomorphic {
				return nil
			}
			non, err := NonIsomorphicSet(spec.Kind, n, spec.Params, spec.SetSize, drawsPerGraph*spec.SetSize, rng)
			if err != nil {
				logger.Warn("skipping vertex count", "n", n, "set", gio.NonIsomorphicDir, "err", err)
				skip(n)
				return nil
			}
			path = filepath.Join(dir, gio.NonIsomorphicDir, gio.FileName(n))
			if err := gio.ExportFile(path, non); err != nil {
				return err
			}
			record(path, len(non))
			logger.Debug("wrote", "path", path, "graphs", len(non))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	slices.Sort(sum.Files)
	slices.Sort(sum.Skipped)
	return &sum, nil
}
