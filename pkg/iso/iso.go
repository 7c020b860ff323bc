// Package iso decides graph isomorphism by dispatching between the tree
// fast path and the general canonical labeling engine.
//
// When both graphs are trees the AHU comparison in package tree decides the
// pair in linear time. Every other pair, and every pair when the fast path
// is disabled, goes through package canon.
package iso

import (
	"context"
	"time"

	"github.com/matzehuels/isobench/pkg/canon"
	"github.com/matzehuels/isobench/pkg/graph"
	"github.com/matzehuels/isobench/pkg/observability"
	"github.com/matzehuels/isobench/pkg/tree"
)

// Method names the algorithm that produced a verdict.
type Method string

const (
	MethodTree    Method = "tree"
	MethodGeneral Method = "general"
)

// Verdict is the outcome of one pairwise check.
type Verdict struct {
	Isomorphic bool   `json:"isomorphic"`
	Method     Method `json:"method"`
}

// Checker decides isomorphism of graph pairs. The zero value is not usable;
// create one with New. A Checker is safe for concurrent use.
type Checker struct {
	treeFastPath bool
}

// Option configures a Checker.
type Option func(*Checker)

// WithTreeFastPath enables or disables the tree fast path. It is enabled by default.
func WithTreeFastPath(enabled bool) Option {
	return func(c *Checker) { c.treeFastPath = enabled }
}

// New creates a Checker.
func New(opts ...Option) *Checker {
	c := &Checker{treeFastPath: true}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// TreeFastPath reports whether the tree fast path is enabled.
func (c *Checker) TreeFastPath() bool { return c.treeFastPath }

// Check decides whether a and b are isomorphic.
func (c *Checker) Check(a, b *graph.Graph) Verdict {
	if c.treeFastPath {
		ta, errA := tree.From(a)
		tb, errB := tree.From(b)
		if errA == nil && errB == nil {
			return Verdict{Isomorphic: tree.Isomorphic(ta, tb), Method: MethodTree}
		}
	}
	return Verdict{Isomorphic: canon.Isomorphic(a, b), Method: MethodGeneral}
}

// CheckTimed runs Check, measures it, and reports the decision to the
// registered bench hooks.
func (c *Checker) CheckTimed(ctx context.Context, a, b *graph.Graph) (Verdict, time.Duration) {
	start := time.Now()
	v := c.Check(a, b)
	d := time.Since(start)
	observability.Bench().OnCheck(ctx, string(v.Method), v.Isomorphic, d)
	return v, d
}
