package cli

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/isobench/pkg/cache"
)

func newTestCLI(t *testing.T) *CLI {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	return New(io.Discard, log.ErrorLevel)
}

func TestNewCacheBackends(t *testing.T) {
	ctx := context.Background()

	t.Run("default file", func(t *testing.T) {
		c := newTestCLI(t)
		store, err := c.newCache(ctx, false)
		if err != nil {
			t.Fatalf("newCache() error: %v", err)
		}
		defer store.Close()

		fc, ok := store.(*cache.FileCache)
		if !ok {
			t.Fatalf("newCache() = %T, want *cache.FileCache", store)
		}
		want, _ := cacheDir()
		if fc.Dir() != want {
			t.Errorf("Dir() = %q, want %q", fc.Dir(), want)
		}
	})

	t.Run("configured dir", func(t *testing.T) {
		c := newTestCLI(t)
		dir := filepath.Join(t.TempDir(), "measurements")
		c.Config.Cache.Dir = dir

		store, err := c.newCache(ctx, false)
		if err != nil {
			t.Fatalf("newCache() error: %v", err)
		}
		defer store.Close()
		if fc := store.(*cache.FileCache); fc.Dir() != dir {
			t.Errorf("Dir() = %q, want %q", fc.Dir(), dir)
		}
	})

	t.Run("no-cache flag", func(t *testing.T) {
		c := newTestCLI(t)
		store, err := c.newCache(ctx, true)
		if err != nil {
			t.Fatalf("newCache() error: %v", err)
		}
		if _, ok := store.(*cache.NullCache); !ok {
			t.Errorf("newCache(noCache) = %T, want *cache.NullCache", store)
		}
	})

	t.Run("none backend", func(t *testing.T) {
		c := newTestCLI(t)
		c.Config.Cache.Backend = cacheBackendNone
		store, err := c.newCache(ctx, false)
		if err != nil {
			t.Fatalf("newCache() error: %v", err)
		}
		if _, ok := store.(*cache.NullCache); !ok {
			t.Errorf("newCache() = %T, want *cache.NullCache", store)
		}
	})
}

func TestNewKeyerScope(t *testing.T) {
	c := newTestCLI(t)
	plain := c.newKeyer().FormKey("Bw")

	c.Config.Cache.Scope = "ci"
	scoped := c.newKeyer().FormKey("Bw")

	if scoped != "ci:"+plain {
		t.Errorf("scoped key = %q, want %q", scoped, "ci:"+plain)
	}
	if strings.HasPrefix(plain, "ci:") {
		t.Errorf("unscoped key %q carries the scope", plain)
	}
}
