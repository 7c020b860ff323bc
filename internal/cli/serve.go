package cli

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/matzehuels/isobench/pkg/observability"
	"github.com/matzehuels/isobench/pkg/server"
)

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		cfg     server.Config
		noCache bool
	)
	cfg.TreeFastPath = true

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the isomorphism HTTP API",
		Long: `Serve the isomorphism HTTP API.

Endpoints: POST /v1/check, POST /v1/encode, POST /v1/form, GET /healthz and
GET /metrics (Prometheus). Canonical forms are cached in the configured
cache backend.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc := c.Config.Server
			values := map[string]any{
				"addr":           sc.Addr,
				"max-body-bytes": sc.MaxBodyBytes,
				"timeout":        sc.Timeout,
			}
			if c.Config.IsSet("server", "tree_fast_path") {
				values["tree-fast-path"] = &sc.TreeFastPath
			}
			if err := applyConfig(cmd, values); err != nil {
				return err
			}
			return c.runServe(cmd.Context(), cfg, noCache)
		},
	}

	cmd.Flags().StringVar(&cfg.Addr, "addr", server.DefaultAddr, "listen address")
	cmd.Flags().Int64Var(&cfg.MaxBodyBytes, "max-body-bytes", server.DefaultMaxBodyBytes, "maximum request body size")
	cmd.Flags().DurationVar(&cfg.Timeout, "timeout", server.DefaultTimeout, "read and write timeout")
	cmd.Flags().BoolVar(&cfg.TreeFastPath, "tree-fast-path", cfg.TreeFastPath, "default for check requests")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the form cache")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, cfg server.Config, noCache bool) error {
	store, err := c.newCache(ctx, noCache)
	if err != nil {
		return err
	}
	defer store.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := observability.NewPrometheus(reg)
	observability.SetBenchHooks(metrics)
	observability.SetCacheHooks(metrics)
	observability.SetHTTPHooks(metrics)
	defer observability.Reset()

	srv := server.New(cfg,
		server.WithLogger(c.Logger),
		server.WithCache(store, c.newKeyer()),
		server.WithMetrics(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})),
	)
	printInfo("Listening on %s", StyleHighlight.Render("http://"+srv.Addr()))
	return srv.ListenAndServe(ctx)
}
