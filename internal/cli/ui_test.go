package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/matzehuels/isobench/pkg/pipeline"
)

func TestMethodLabel(t *testing.T) {
	tests := []struct {
		name string
		m    pipeline.Measurement
		want string
	}{
		{"no pairs", pipeline.Measurement{}, "-"},
		{"trees", pipeline.Measurement{Pairs: 3, TreePairs: 3}, "tree"},
		{"general", pipeline.Measurement{Pairs: 3, GeneralPairs: 3}, "general"},
		{"mixed", pipeline.Measurement{Pairs: 3, TreePairs: 1, GeneralPairs: 2}, "mixed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, methodLabel(tt.m))
		})
	}
}

func TestPrintMeasurementsTable(t *testing.T) {
	ms := []pipeline.Measurement{
		{NodeCount: 6, Graphs: 3, Pairs: 3, TreePairs: 3, Average: time.Microsecond},
		{NodeCount: 8, Graphs: 3, Pairs: 3, TreePairs: 3, Average: 2 * time.Microsecond, Cached: true},
	}
	assert.NotPanics(t, func() {
		printMeasurements("Isomorphic", ms)
		printMeasurements("Non-isomorphic", nil)
		printStats(pipeline.Stats{Files: 2, Graphs: 6, Pairs: 6, TreePairs: 6, CacheHits: 1})
	})
}
