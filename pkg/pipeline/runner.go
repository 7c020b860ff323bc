package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/isobench/pkg/cache"
	gio "github.com/matzehuels/isobench/pkg/io"
	"github.com/matzehuels/isobench/pkg/observability"
)

// keyTypeMeasurement labels measurement cache events.
const keyTypeMeasurement = "measurement"

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store results. Multiple goroutines can safely use the same Runner with
// different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute benchmarks the isomorphic set of the dataset and, when present,
// its non-isomorphic set.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	layout, err := gio.ResolveLayout(opts.Dataset)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	result := &Result{
		RunID:        uuid.NewString(),
		Dataset:      opts.Dataset,
		TreeFastPath: opts.TreeFastPath,
		StartedAt:    start.UTC(),
	}
	opts.Logger.Debug("resolved dataset",
		"isomorphic", layout.Isomorphic,
		"non_isomorphic", layout.NonIsomorphic,
		"run_id", result.RunID)

	// Stage 1: isomorphic set
	result.Isomorphic, err = r.RunSet(ctx, layout.Isomorphic, true, opts)
	if err != nil {
		return nil, fmt.Errorf("isomorphic set: %w", err)
	}
	opts.Logger.Info("processed isomorphic graphs",
		"files", len(result.Isomorphic),
		"duration", time.Since(start).Round(time.Millisecond))

	// Stage 2: non-isomorphic set
	if layout.NonIsomorphic != "" && !opts.OnlyIsomorphic {
		stageStart := time.Now()
		result.NonIsomorphic, err = r.RunSet(ctx, layout.NonIsomorphic, false, opts)
		if err != nil {
			return nil, fmt.Errorf("non-isomorphic set: %w", err)
		}
		opts.Logger.Info("processed non-isomorphic graphs",
			"files", len(result.NonIsomorphic),
			"duration", time.Since(stageStart).Round(time.Millisecond))
	}

	for _, m := range result.Isomorphic {
		result.Stats.add(m)
	}
	for _, m := range result.NonIsomorphic {
		result.Stats.add(m)
	}
	result.Stats.Duration = time.Since(start)
	return result, nil
}

// RunSet measures every "<n>.g6" file in dir, expecting every pair to have
// the given verdict. Measurements are returned in vertex-count order.
func (r *Runner) RunSet(ctx context.Context, dir string, expected bool, opts Options) ([]Measurement, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	entries, skipped, err := gio.ScanDir(dir)
	if err != nil {
		return nil, err
	}
	for _, path := range skipped {
		opts.Logger.Debug("skipping file without vertex count", "path", path)
	}

	out := make([]Measurement, len(entries))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for i, e := range entries {
		g.Go(func() error {
			m, err := r.MeasureFile(ctx, e, expected, opts)
			if err != nil {
				return err
			}
			out[i] = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// MeasureFile measures one dataset file, serving the result from the cache
// when the file content and options are unchanged.
func (r *Runner) MeasureFile(ctx context.Context, e gio.Entry, expected bool, opts Options) (Measurement, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return Measurement{}, fmt.Errorf("invalid options: %w", err)
	}

	data, err := os.ReadFile(e.Path)
	if err != nil {
		return Measurement{}, fmt.Errorf("read %s: %w", e.Path, err)
	}
	cacheKey := r.Keyer.MeasurementKey(cache.Hash(data), opts.MeasurementKeyOpts(expected))

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if m, ok := r.cached(ctx, cacheKey); ok {
			m.NodeCount, m.Path, m.Cached = e.NodeCount, e.Path, true
			opts.Logger.Debug("cached measurement", "path", e.Path, "average", m.Average)
			return m, nil
		}
	}

	gs, err := gio.ReadGraphs(bytes.NewReader(data))
	if err != nil {
		return Measurement{}, fmt.Errorf("%s: %w", e.Path, err)
	}

	observability.Bench().OnFileStart(ctx, e.Path, len(gs))
	m, err := Measure(ctx, opts.Checker(), e.Path, gs, expected)
	if err != nil {
		observability.Bench().OnFileComplete(ctx, e.Path, 0, 0, err)
		return Measurement{}, err
	}
	m.NodeCount = e.NodeCount
	observability.Bench().OnFileComplete(ctx, e.Path, m.Pairs, m.Average, nil)

	if m.Pairs == 0 {
		opts.Logger.Warn("file has fewer than two graphs; reporting zero time", "path", e.Path, "graphs", m.Graphs)
	}
	opts.Logger.Debug("measured", "path", e.Path, "pairs", m.Pairs, "average", m.Average)

	// Cache the result
	if encoded, err := json.Marshal(m); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, encoded, cache.MeasurementTTL); err == nil {
			observability.Cache().OnCacheSet(ctx, keyTypeMeasurement, len(encoded))
		} else {
			opts.Logger.Debug("cache write failed", "err", err)
		}
	}
	return m, nil
}

func (r *Runner) cached(ctx context.Context, key string) (Measurement, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil || !hit {
		observability.Cache().OnCacheMiss(ctx, keyTypeMeasurement)
		return Measurement{}, false
	}
	var m Measurement
	if err := json.Unmarshal(data, &m); err != nil {
		observability.Cache().OnCacheMiss(ctx, keyTypeMeasurement)
		return Measurement{}, false
	}
	observability.Cache().OnCacheHit(ctx, keyTypeMeasurement)
	return m, true
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
