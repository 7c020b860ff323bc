package pipeline

import (
	"context"
	"time"

	errs "github.com/matzehuels/isobench/pkg/errors"
	"github.com/matzehuels/isobench/pkg/graph"
	"github.com/matzehuels/isobench/pkg/iso"
)

// Measure checks every pair i < j of gs with c and averages the per-pair
// durations. A verdict that differs from expected returns a VERDICT_MISMATCH
// error naming file and the pair. Cancellation is observed between rows.
func Measure(ctx context.Context, c *iso.Checker, file string, gs []*graph.Graph, expected bool) (Measurement, error) {
	m := Measurement{
		Path:       file,
		Isomorphic: expected,
		Graphs:     len(gs),
	}
	if len(gs) > 0 {
		m.NodeCount = gs[0].Order()
	}

	var total time.Duration
	for i := range gs {
		if err := ctx.Err(); err != nil {
			return Measurement{}, err
		}
		for j := i + 1; j < len(gs); j++ {
			v, d := c.CheckTimed(ctx, gs[i], gs[j])
			if v.Isomorphic != expected {
				mismatch := &errs.MismatchError{File: file, I: i, J: j, Expected: expected}
				return Measurement{}, errs.Wrap(errs.ErrCodeVerdictMismatch, mismatch, "verdict mismatch")
			}
			total += d
			m.Pairs++
			if v.Method == iso.MethodTree {
				m.TreePairs++
			} else {
				m.GeneralPairs++
			}
		}
	}
	if m.Pairs > 0 {
		m.Average = total / time.Duration(m.Pairs)
	}
	return m, nil
}
