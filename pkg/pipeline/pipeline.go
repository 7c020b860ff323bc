// Package pipeline runs isomorphism benchmarks over graph6 datasets.
//
// This package implements the dataset → measurements → result flow behind
// the bench command. Caching, worker scheduling and verdict checking live
// here so library callers get the same behavior as the CLI.
//
// # Architecture
//
// A run consists of three steps:
//
//  1. Resolve: locate the isomorphic and non-isomorphic sets of the dataset
//  2. Measure: for every "<n>.g6" file, check every pair of graphs, time
//     each check, and average the timings per file
//  3. Collect: gather per-file measurements and run statistics into a Result
//
// Every verdict is compared with the set the file belongs to. A pair in the
// isomorphic set reported as non-isomorphic (or the reverse) aborts the run
// with a VERDICT_MISMATCH error.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Dataset:      "datasets/trees",
//	    TreeFastPath: true,
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, m := range result.Isomorphic {
//	    fmt.Println(m.NodeCount, m.Average)
//	}
//
// Measure a single set:
//
//	ms, err := runner.RunSet(ctx, "datasets/trees/non_isomorphic", false, opts)
package pipeline

import (
	"io"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/isobench/pkg/cache"
	errs "github.com/matzehuels/isobench/pkg/errors"
	"github.com/matzehuels/isobench/pkg/iso"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultWorkers is the number of files measured concurrently. Timings
	// taken in parallel compete for CPU, so one worker is the default.
	DefaultWorkers = 1

	// MaxWorkers bounds Options.Workers.
	MaxWorkers = 256
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a benchmark run.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Dataset is the dataset root directory.
	Dataset string `json:"dataset"`

	// TreeFastPath decides tree pairs with the AHU comparison instead of
	// canonical labeling. The CLI enables it by default.
	TreeFastPath bool `json:"tree_fast_path"`

	// OnlyIsomorphic skips the non-isomorphic set even when present.
	OnlyIsomorphic bool `json:"only_isomorphic,omitempty"`

	// Workers is the number of files measured concurrently.
	Workers int `json:"workers,omitempty"`

	// Refresh ignores cached measurements and overwrites them.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := errs.ValidatePath(o.Dataset); err != nil {
		return err
	}
	o.Dataset = filepath.Clean(o.Dataset)
	if o.Workers == 0 {
		o.Workers = DefaultWorkers
	}
	if o.Workers < 0 || o.Workers > MaxWorkers {
		return errs.New(errs.ErrCodeInvalidInput, "workers must be in [1, %d], got %d", MaxWorkers, o.Workers)
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// Checker returns the isomorphism checker configured by the options.
func (o *Options) Checker() *iso.Checker {
	return iso.New(iso.WithTreeFastPath(o.TreeFastPath))
}

// MeasurementKeyOpts returns cache key options for a file measured with
// the given expected verdict.
func (o *Options) MeasurementKeyOpts(expected bool) cache.MeasurementKeyOpts {
	return cache.MeasurementKeyOpts{
		TreeFastPath: o.TreeFastPath,
		Expected:     expected,
	}
}

// =============================================================================
// Results
// =============================================================================

// Measurement is the benchmark outcome of one dataset file.
type Measurement struct {
	NodeCount int    `json:"node_count" bson:"node_count"`
	Path      string `json:"path" bson:"path"`

	// Isomorphic is the verdict every pair of the file was expected to
	// produce, i.e. which set the file belongs to.
	Isomorphic bool `json:"is_isomorphic" bson:"is_isomorphic"`

	Graphs int `json:"graphs" bson:"graphs"`
	Pairs  int `json:"pairs" bson:"pairs"`

	// TreePairs and GeneralPairs count the pairs decided by each method.
	TreePairs    int `json:"tree_pairs" bson:"tree_pairs"`
	GeneralPairs int `json:"general_pairs" bson:"general_pairs"`

	// Average is the mean duration of one pairwise check, zero when the
	// file holds fewer than two graphs.
	Average time.Duration `json:"average_ns" bson:"average_ns"`

	// Cached reports that the measurement was served from the cache.
	Cached bool `json:"cached" bson:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID uniquely identifies the run.
	RunID string `json:"run_id" bson:"_id"`

	Dataset      string    `json:"dataset" bson:"dataset"`
	TreeFastPath bool      `json:"tree_fast_path" bson:"tree_fast_path"`
	StartedAt    time.Time `json:"started_at" bson:"started_at"`

	// Isomorphic holds one measurement per file of the isomorphic set,
	// ordered by vertex count.
	Isomorphic []Measurement `json:"isomorphic" bson:"isomorphic"`

	// NonIsomorphic is nil when the dataset has no non-isomorphic set or
	// Options.OnlyIsomorphic was set.
	NonIsomorphic []Measurement `json:"non_isomorphic,omitempty" bson:"non_isomorphic,omitempty"`

	// Stats contains timing and size information.
	Stats Stats `json:"stats" bson:"stats"`
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Files        int           `json:"files" bson:"files"`
	Graphs       int           `json:"graphs" bson:"graphs"`
	Pairs        int           `json:"pairs" bson:"pairs"`
	TreePairs    int           `json:"tree_pairs" bson:"tree_pairs"`
	GeneralPairs int           `json:"general_pairs" bson:"general_pairs"`
	CacheHits    int           `json:"cache_hits" bson:"cache_hits"`
	Duration     time.Duration `json:"duration_ns" bson:"duration_ns"`
}

// add folds a measurement into the statistics.
func (s *Stats) add(m Measurement) {
	s.Files++
	s.Graphs += m.Graphs
	s.Pairs += m.Pairs
	s.TreePairs += m.TreePairs
	s.GeneralPairs += m.GeneralPairs
	if m.Cached {
		s.CacheHits++
	}
}
