package cache

// Keyer builds cache keys.
type Keyer interface {
	// MeasurementKey identifies the timing of one dataset file under the
	// given benchmark options.
	MeasurementKey(contentHash string, opts MeasurementKeyOpts) string

	// FormKey identifies the canonical form of a graph given as graph6.
	FormKey(graph6 string) string
}

// MeasurementKeyOpts lists the options that change a measurement.
type MeasurementKeyOpts struct {
	TreeFastPath bool `json:"tree_fast_path"`
	Expected     bool `json:"expected"`
}

// DefaultKeyer builds keys of the form kind:sha256(parts).
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// MeasurementKey implements Keyer.
func (DefaultKeyer) MeasurementKey(contentHash string, opts MeasurementKeyOpts) string {
	return hashKey("measurement", contentHash, opts)
}

// FormKey implements Keyer.
func (DefaultKeyer) FormKey(graph6 string) string {
	return hashKey("form", graph6)
}
