package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/matzehuels/isobench/pkg/cache"
)

func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or clear cached measurements and canonical forms",
	}
	cmd.AddCommand(
		c.cacheInfoCommand(),
		c.cacheClearCommand(),
		c.cachePathCommand(),
	)
	return cmd
}

// cacheInfoCommand reports the backend and, for the file cache, its size.
func (c *CLI) cacheInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the cache backend and how much it holds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := c.newCache(cmd.Context(), false)
			if err != nil {
				return fmt.Errorf("open cache: %w", err)
			}
			defer store.Close()

			switch s := store.(type) {
			case *cache.FileCache:
				entries, size, err := s.Usage(cmd.Context())
				if err != nil {
					return fmt.Errorf("read cache: %w", err)
				}
				printKeyValue("Backend", "file")
				printKeyValue("Directory", s.Dir())
				printKeyValue("Entries", humanize.Comma(int64(entries)))
				printKeyValue("Size", humanize.Bytes(uint64(size)))
			case *cache.RedisCache:
				printKeyValue("Backend", "redis")
				printKeyValue("Address", c.Config.Cache.Redis.Addr)
			default:
				printInfo("Cache is disabled")
			}
			return nil
		},
	}
}

func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every cached entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := c.newCache(cmd.Context(), false)
			if err != nil {
				return fmt.Errorf("open cache: %w", err)
			}
			defer store.Close()

			clearer, ok := store.(cache.Clearer)
			if !ok {
				printInfo("Cache is disabled")
				return nil
			}
			n, err := clearer.Clear(cmd.Context())
			if err != nil {
				return fmt.Errorf("clear cache: %w", err)
			}
			if n == 0 {
				printInfo("Cache is empty")
				return nil
			}
			printSuccess("Cleared %s cached entries", humanize.Comma(int64(n)))
			return nil
		},
	}
}

func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the file cache directory",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			dir := c.Config.Cache.Dir
			if dir == "" {
				var err error
				if dir, err = cacheDir(); err != nil {
					return fmt.Errorf("get cache dir: %w", err)
				}
			}
			fmt.Println(dir)
			return nil
		},
	}
}
