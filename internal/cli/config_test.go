package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"

	errs "github.com/matzehuels/isobench/pkg/errors"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, `
[bench]
workers = 2
tree_fast_path = false

[cache]
backend = "none"
scope = "ci"

[server]
addr = ":9090"
timeout = "5s"
`)

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg.Bench.Workers != 2 {
		t.Errorf("Bench.Workers = %d, want 2", cfg.Bench.Workers)
	}
	if cfg.Bench.TreeFastPath == nil || *cfg.Bench.TreeFastPath {
		t.Errorf("Bench.TreeFastPath = %v, want false", cfg.Bench.TreeFastPath)
	}
	if cfg.Bench.OnlyIsomorphic != nil {
		t.Errorf("Bench.OnlyIsomorphic = %v, want nil", *cfg.Bench.OnlyIsomorphic)
	}
	if cfg.Cache.Backend != cacheBackendNone || cfg.Cache.Scope != "ci" {
		t.Errorf("Cache = %+v", cfg.Cache)
	}
	if cfg.Server.Addr != ":9090" || cfg.Server.Timeout != 5*time.Second {
		t.Errorf("Server = %+v", cfg.Server)
	}
	if !cfg.IsSet("bench", "tree_fast_path") {
		t.Error("IsSet(bench.tree_fast_path) = false, want true")
	}
	if cfg.IsSet("server", "tree_fast_path") {
		t.Error("IsSet(server.tree_fast_path) = true, want false")
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		code    errs.Code
	}{
		{"unknown key", "[bench]\nthreads = 4\n", errs.ErrCodeInvalidInput},
		{"unknown backend", "[cache]\nbackend = \"memcached\"\n", errs.ErrCodeInvalidInput},
		{"malformed", "[bench\n", errs.ErrCodeInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".toml")
			writeFile(t, path, tt.content)
			_, err := loadConfig(path)
			if !errs.Is(err, tt.code) {
				t.Errorf("loadConfig() error = %v, want code %s", err, tt.code)
			}
		})
	}

	t.Run("explicit missing file", func(t *testing.T) {
		_, err := loadConfig(filepath.Join(dir, "missing.toml"))
		if !errs.Is(err, errs.ErrCodeFileNotFound) {
			t.Errorf("loadConfig() error = %v, want FILE_NOT_FOUND", err)
		}
	})
}

func TestLoadConfigDefaultMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig(\"\") error: %v", err)
	}
	if cfg.Bench.Workers != 0 || cfg.Cache.Backend != "" {
		t.Errorf("loadConfig(\"\") = %+v, want empty config", cfg)
	}
}

func TestWriteConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	want := defaultConfig()
	if err := writeConfig(path, want); err != nil {
		t.Fatalf("writeConfig() error: %v", err)
	}

	got, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if got.Bench.Workers != want.Bench.Workers || got.Bench.Output != want.Bench.Output {
		t.Errorf("Bench = %+v, want %+v", got.Bench, want.Bench)
	}
	if got.Bench.TreeFastPath == nil || !*got.Bench.TreeFastPath {
		t.Error("Bench.TreeFastPath not preserved")
	}
	if got.Generate.Kind != want.Generate.Kind || got.Generate.SetSize != want.Generate.SetSize {
		t.Errorf("Generate = %+v, want %+v", got.Generate, want.Generate)
	}
	if got.Server != want.Server {
		t.Errorf("Server = %+v, want %+v", got.Server, want.Server)
	}
	if got.Cache.Backend != cacheBackendFile {
		t.Errorf("Cache.Backend = %q, want %q", got.Cache.Backend, cacheBackendFile)
	}
}

func TestApplyConfig(t *testing.T) {
	newCmd := func() (*cobra.Command, *int, *string, *bool) {
		var (
			workers int = 1
			output      = "results.csv"
			fast        = true
		)
		cmd := &cobra.Command{Use: "test"}
		cmd.Flags().IntVar(&workers, "workers", workers, "")
		cmd.Flags().StringVar(&output, "output", output, "")
		cmd.Flags().BoolVar(&fast, "tree-fast-path", fast, "")
		return cmd, &workers, &output, &fast
	}
	off := false

	t.Run("fills unchanged flags", func(t *testing.T) {
		cmd, workers, output, fast := newCmd()
		err := applyConfig(cmd, map[string]any{
			"workers":        4,
			"output":         "out.csv",
			"tree-fast-path": &off,
		})
		if err != nil {
			t.Fatalf("applyConfig() error: %v", err)
		}
		if *workers != 4 || *output != "out.csv" || *fast {
			t.Errorf("got workers=%d output=%q fast=%v", *workers, *output, *fast)
		}
	})

	t.Run("command line wins", func(t *testing.T) {
		cmd, workers, _, _ := newCmd()
		if err := cmd.Flags().Set("workers", "8"); err != nil {
			t.Fatal(err)
		}
		if err := applyConfig(cmd, map[string]any{"workers": 4}); err != nil {
			t.Fatalf("applyConfig() error: %v", err)
		}
		if *workers != 8 {
			t.Errorf("workers = %d, want 8", *workers)
		}
	})

	t.Run("zero values keep defaults", func(t *testing.T) {
		cmd, workers, output, fast := newCmd()
		var unset *bool
		err := applyConfig(cmd, map[string]any{
			"workers":        0,
			"output":         "",
			"tree-fast-path": unset,
			"no-such-flag":   3,
		})
		if err != nil {
			t.Fatalf("applyConfig() error: %v", err)
		}
		if *workers != 1 || *output != "results.csv" || !*fast {
			t.Errorf("got workers=%d output=%q fast=%v", *workers, *output, *fast)
		}
	})
}
