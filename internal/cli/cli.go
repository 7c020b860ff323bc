package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/isobench/pkg/buildinfo"
	"github.com/matzehuels/isobench/pkg/cache"
	"github.com/matzehuels/isobench/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "isobench"

	// cacheBackend values for the [cache] backend setting.
	cacheBackendFile  = "file"
	cacheBackendRedis = "redis"
	cacheBackendNone  = "none"
)

// Log levels accepted by New.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Config is loaded before any command runs. It is never nil.
	Config *Config

	stderr     io.Writer
	configPath string
	logFile    string
	logCloser  io.Closer
	verbose    bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: &Config{},
		stderr: w,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "isobench benchmarks graph isomorphism checks",
		Long: `isobench decides whether graphs are isomorphic and measures how long it takes.

Trees are compared through AHU encodings rooted at their centers; all other
graphs go through canonical labeling. Datasets are directories of graph6
files named after their vertex count.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				c.SetLogLevel(LogDebug)
			}
			if err := c.setup(); err != nil {
				return err
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return c.teardown()
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/isobench/config.toml if present)")
	root.PersistentFlags().StringVar(&c.logFile, "log-file", "", "also write logs to this file (rotated)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		c.benchCommand(),
		c.checkCommand(),
		c.encodeCommand(),
		c.generateCommand(),
		c.convertCommand(),
		c.duplicateCommand(),
		c.renderCommand(),
		c.serveCommand(),
		c.runsCommand(),
		c.cacheCommand(),
		c.configCommand(),
		c.completionCommand(),
		c.versionCommand(),
	)

	return root
}

// setup loads the configuration and attaches the log file.
func (c *CLI) setup() error {
	cfg, err := loadConfig(c.configPath)
	if err != nil {
		return err
	}
	c.Config = cfg
	if c.logFile != "" {
		c.logCloser = attachLogFile(c.Logger, c.stderr, c.logFile)
	}
	return nil
}

func (c *CLI) teardown() error {
	if c.logCloser == nil {
		return nil
	}
	err := c.logCloser.Close()
	c.logCloser = nil
	return err
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	store, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(store, c.newKeyer(), c.Logger), nil
}

// newCache opens the cache backend selected in the configuration.
func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	cfg := c.Config.Cache
	if noCache || cfg.Backend == cacheBackendNone {
		return cache.NewNullCache(), nil
	}
	if cfg.Backend == cacheBackendRedis {
		rc, err := cache.NewRedisCache(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		return rc, nil
	}
	dir := cfg.Dir
	if dir == "" {
		d, err := cacheDir()
		if err != nil {
			c.Logger.Warn("no cache directory; caching disabled", "err", err)
			return cache.NewNullCache(), nil
		}
		dir = d
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return nil, err
	}
	return fc, nil
}

func (c *CLI) newKeyer() cache.Keyer {
	if scope := c.Config.Cache.Scope; scope != "" {
		return cache.NewScopedKeyer(nil, scope+":")
	}
	return cache.NewDefaultKeyer()
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/isobench/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// configDir returns the config directory using XDG standard (~/.config/isobench/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}
