package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/matzehuels/isobench/pkg/cache"
	errs "github.com/matzehuels/isobench/pkg/errors"
	"github.com/matzehuels/isobench/pkg/generate"
	"github.com/matzehuels/isobench/pkg/pipeline"
	"github.com/matzehuels/isobench/pkg/results"
	"github.com/matzehuels/isobench/pkg/server"
)

// configFileName is looked up in configDir when --config is not given.
const configFileName = "config.toml"

// Config is the TOML configuration file. Every value seeds the default of
// the matching flag; flags given on the command line win.
//
//	[bench]
//	workers = 4
//	output = "results/trees.csv"
//
//	[cache]
//	backend = "redis"
//	[cache.redis]
//	addr = "localhost:6379"
type Config struct {
	Bench    BenchConfig    `toml:"bench"`
	Cache    CacheConfig    `toml:"cache"`
	Generate GenerateConfig `toml:"generate"`
	Server   server.Config  `toml:"server"`
	Results  ResultsConfig  `toml:"results"`

	meta toml.MetaData
}

// IsSet reports whether the config file defined the key.
func (c *Config) IsSet(key ...string) bool {
	return c.meta.IsDefined(key...)
}

// BenchConfig seeds the bench command.
type BenchConfig struct {
	TreeFastPath   *bool  `toml:"tree_fast_path"`
	OnlyIsomorphic *bool  `toml:"only_isomorphic"`
	Workers        int    `toml:"workers"`
	Output         string `toml:"output"`
}

// CacheConfig selects the measurement cache.
type CacheConfig struct {
	// Backend is "file" (default), "redis" or "none".
	Backend string `toml:"backend"`

	// Dir overrides the file cache directory.
	Dir string `toml:"dir"`

	// Scope prefixes every key, so hosts sharing a Redis cache do not
	// reuse each other's timings.
	Scope string `toml:"scope"`

	Redis cache.RedisConfig `toml:"redis"`
}

// GenerateConfig seeds the generate command.
type GenerateConfig struct {
	Kind           string  `toml:"kind"`
	Start          int     `toml:"start"`
	End            int     `toml:"end"`
	Step           int     `toml:"step"`
	SetSize        int     `toml:"set_size"`
	Density        float64 `toml:"density"`
	Degree         int     `toml:"degree"`
	Seed           uint64  `toml:"seed"`
	Workers        int     `toml:"workers"`
	OnlyIsomorphic *bool   `toml:"only_isomorphic"`
}

// ResultsConfig selects additional result sinks for bench.
type ResultsConfig struct {
	JSON  string              `toml:"json"`
	Mongo results.MongoConfig `toml:"mongo"`
}

// loadConfig reads path, or the default config file when path is empty.
// A missing default file yields an empty configuration.
func loadConfig(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := defaultConfigPath()
		if err != nil {
			return &Config{}, nil
		}
		path = p
	}

	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, fs.ErrNotExist) {
		if explicit {
			return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "config %s", path)
		}
		return &Config{}, nil
	}
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidFormat, err, "config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errs.New(errs.ErrCodeInvalidInput, "config %s: unknown key %s", path, undecoded[0])
	}
	cfg.meta = md
	switch cfg.Cache.Backend {
	case "", cacheBackendFile, cacheBackendRedis, cacheBackendNone:
	default:
		return nil, errs.New(errs.ErrCodeInvalidInput, "config %s: unknown cache backend %q", path, cfg.Cache.Backend)
	}
	return &cfg, nil
}

// applyConfig sets every flag named in values that was not given on the
// command line. Zero values and nil *bool leave the flag default alone.
func applyConfig(cmd *cobra.Command, values map[string]any) error {
	for name, v := range values {
		f := cmd.Flags().Lookup(name)
		if f == nil || f.Changed {
			continue
		}
		var s string
		switch x := v.(type) {
		case *bool:
			if x == nil {
				continue
			}
			s = strconv.FormatBool(*x)
		default:
			if reflect.ValueOf(v).IsZero() {
				continue
			}
			s = fmt.Sprint(v)
		}
		if err := f.Value.Set(s); err != nil {
			return errs.Wrap(errs.ErrCodeInvalidInput, err, "config value for --%s", name)
		}
	}
	return nil
}

// defaultConfigPath returns the config file read when --config is not given.
func defaultConfigPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// defaultConfig returns the configuration written by "config init": the
// built-in defaults, spelled out.
func defaultConfig() *Config {
	fast := true
	gp := generate.DefaultParams()
	return &Config{
		Bench: BenchConfig{
			TreeFastPath: &fast,
			Workers:      pipeline.DefaultWorkers,
			Output:       defaultBenchOutput,
		},
		Cache: CacheConfig{Backend: cacheBackendFile},
		Generate: GenerateConfig{
			Kind:    string(generate.KindTree),
			Start:   defaultGenerateStart,
			End:     defaultGenerateEnd,
			Step:    defaultGenerateStep,
			SetSize: generate.DefaultSetSize,
			Density: gp.Density,
			Degree:  gp.Degree,
			Seed:    generate.DefaultSeed,
			Workers: 1,
		},
		Server: server.Config{
			Addr:         server.DefaultAddr,
			MaxBodyBytes: server.DefaultMaxBodyBytes,
			Timeout:      server.DefaultTimeout,
			TreeFastPath: true,
		},
	}
}

// writeConfig writes cfg to path as TOML, creating parent directories.
func writeConfig(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
