package generate

import (
	"errors"
	"slices"
	"strings"

	errs "github.com/matzehuels/isobench/pkg/errors"
)

// Kind names a graph family.
type Kind string

const (
	KindTree              Kind = "tree"
	KindPath              Kind = "path"
	KindStar              Kind = "star"
	KindCycle             Kind = "cycle"
	KindComplete          Kind = "complete"
	KindCompleteBipartite Kind = "complete_bipartite"
	KindBipartite         Kind = "bipartite"
	KindRandom            Kind = "random"
	KindRegular           Kind = "regular"
	KindRegularBipartite  Kind = "regular_bipartite"
	KindCactus            Kind = "cactus"
)

var kinds = []Kind{
	KindTree, KindPath, KindStar, KindCycle, KindComplete,
	KindCompleteBipartite, KindBipartite, KindRandom,
	KindRegular, KindRegularBipartite, KindCactus,
}

// Kinds returns every supported kind.
func Kinds() []Kind {
	return slices.Clone(kinds)
}

// ParseKind validates a kind name.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(kinds, k) {
		return "", errs.New(errs.ErrCodeInvalidInput, "unknown graph kind %q", s)
	}
	return k, nil
}

// Params holds the tunables shared by the generators.
type Params struct {
	// Density is the edge probability for random and bipartite graphs.
	Density float64 `toml:"density" json:"density"`

	// Degree is the vertex degree for regular and regular_bipartite graphs.
	Degree int `toml:"degree" json:"degree"`
}

// DefaultParams returns density 0.5 and degree 3.
func DefaultParams() Params {
	return Params{Density: 0.5, Degree: 3}
}

// ErrConstructFailed is returned when a randomized construction gives up
// after its bounded number of attempts.
var ErrConstructFailed = errors.New("construction failed")

// maxAttempts bounds the restarts of the randomized constructions.
const maxAttempts = 100
