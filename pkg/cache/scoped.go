package cache

// ScopedKeyer prefixes every key of an inner Keyer. Timings measured on
// different machines are not comparable, so hosts that share a Redis cache
// each use their own scope:
//
//	keyer := cache.NewScopedKeyer(nil, "host:"+hostname+":")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer wraps inner, or the default keyer when inner is nil.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

func (k *ScopedKeyer) MeasurementKey(contentHash string, opts MeasurementKeyOpts) string {
	return k.prefix + k.inner.MeasurementKey(contentHash, opts)
}

func (k *ScopedKeyer) FormKey(graph6 string) string {
	return k.prefix + k.inner.FormKey(graph6)
}
