// Package cache provides key-value caching for benchmark measurements and
// canonical forms.
//
// Backends:
//   - FileCache: one JSON file per entry under a directory (CLI default)
//   - RedisCache: shared cache for multi-instance servers
//   - NullCache: never stores anything (--no-cache)
//
// Keys are built by a Keyer so that every backend sees the same layout, and
// ScopedKeyer adds a namespace prefix on top.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key-value store with optional expiration.
type Cache interface {
	// Get returns the stored value and true, or nil and false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// Clearer is implemented by caches that can drop all of their entries.
type Clearer interface {
	Clear(ctx context.Context) (int, error)
}

// Default TTLs.
const (
	// MeasurementTTL bounds how long a cached timing stays valid. Timings
	// depend on the machine, so they are not kept forever.
	MeasurementTTL = 7 * 24 * time.Hour

	// FormTTL is the lifetime of cached canonical forms.
	FormTTL = 30 * 24 * time.Hour
)
