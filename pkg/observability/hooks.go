// Package observability lets the benchmark, the caches and the HTTP API
// report events without importing a metrics backend.
//
// Three hook interfaces cover the event sources. Each has a no-op
// implementation, which is what [Bench], [Cache] and [HTTP] return until a
// binary installs something else:
//
//	p := observability.NewPrometheus(prometheus.DefaultRegisterer)
//	observability.SetBenchHooks(p)
//	observability.SetCacheHooks(p)
//	observability.SetHTTPHooks(p)
//
// Library code only ever emits:
//
//	start := time.Now()
//	v := checker.Check(a, b)
//	observability.Bench().OnCheck(ctx, string(v.Method), v.Isomorphic, time.Since(start))
//
// [TeeBench] combines bench hooks, so a command can watch file progress
// while metrics keep flowing to whatever was installed before.
package observability

import (
	"context"
	"sync"
	"time"
)

// BenchHooks receives pairwise decisions and per-file progress.
type BenchHooks interface {
	// OnCheck reports one decision. method is "tree" or "general".
	OnCheck(ctx context.Context, method string, isomorphic bool, d time.Duration)

	OnFileStart(ctx context.Context, path string, graphs int)
	OnFileComplete(ctx context.Context, path string, pairs int, average time.Duration, err error)
}

// CacheHooks receives cache lookups and writes. keyType is "measurement"
// or "form".
type CacheHooks interface {
	OnCacheHit(ctx context.Context, keyType string)
	OnCacheMiss(ctx context.Context, keyType string)
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// HTTPHooks receives API requests. route is the chi route pattern, not the
// raw path.
type HTTPHooks interface {
	OnRequest(ctx context.Context, method, route string)
	OnResponse(ctx context.Context, method, route string, status int, d time.Duration)
}

type NoopBenchHooks struct{}

func (NoopBenchHooks) OnCheck(context.Context, string, bool, time.Duration)              {}
func (NoopBenchHooks) OnFileStart(context.Context, string, int)                          {}
func (NoopBenchHooks) OnFileComplete(context.Context, string, int, time.Duration, error) {}

type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

// TeeBench returns hooks that forward every event to each of hs in order.
// Nil entries are dropped.
func TeeBench(hs ...BenchHooks) BenchHooks {
	var t teeBench
	for _, h := range hs {
		if h != nil {
			t = append(t, h)
		}
	}
	if len(t) == 1 {
		return t[0]
	}
	return t
}

type teeBench []BenchHooks

func (t teeBench) OnCheck(ctx context.Context, method string, isomorphic bool, d time.Duration) {
	for _, h := range t {
		h.OnCheck(ctx, method, isomorphic, d)
	}
}

func (t teeBench) OnFileStart(ctx context.Context, path string, graphs int) {
	for _, h := range t {
		h.OnFileStart(ctx, path, graphs)
	}
}

func (t teeBench) OnFileComplete(ctx context.Context, path string, pairs int, average time.Duration, err error) {
	for _, h := range t {
		h.OnFileComplete(ctx, path, pairs, average, err)
	}
}

// slot holds one installed hook implementation.
type slot[T any] struct {
	mu  sync.RWMutex
	cur T
	def T
}

func newSlot[T any](def T) *slot[T] { return &slot[T]{cur: def, def: def} }

func (s *slot[T]) get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur
}

func (s *slot[T]) set(h T, ok bool) {
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cur = h
}

func (s *slot[T]) reset() { s.set(s.def, true) }

var (
	benchSlot = newSlot[BenchHooks](NoopBenchHooks{})
	cacheSlot = newSlot[CacheHooks](NoopCacheHooks{})
	httpSlot  = newSlot[HTTPHooks](NoopHTTPHooks{})
)

// SetBenchHooks installs h. A nil h is ignored.
func SetBenchHooks(h BenchHooks) { benchSlot.set(h, h != nil) }

// SetCacheHooks installs h. A nil h is ignored.
func SetCacheHooks(h CacheHooks) { cacheSlot.set(h, h != nil) }

// SetHTTPHooks installs h. A nil h is ignored.
func SetHTTPHooks(h HTTPHooks) { httpSlot.set(h, h != nil) }

func Bench() BenchHooks { return benchSlot.get() }
func Cache() CacheHooks { return cacheSlot.get() }
func HTTP() HTTPHooks   { return httpSlot.get() }

// Reset reinstalls the no-op hooks.
func Reset() {
	benchSlot.reset()
	cacheSlot.reset()
	httpSlot.reset()
}
