// Package server exposes isomorphism checks over HTTP.
//
// # Endpoints
//
//	POST /v1/check    {"a": "<graph6>", "b": "<graph6>", "tree_fast_path": true}
//	POST /v1/encode   {"graph": "<graph6>"}
//	POST /v1/form     {"graph": "<graph6>"}
//	GET  /healthz
//	GET  /metrics     (when a metrics handler is configured)
//
// /v1/check reports the verdict, the method that decided it, and whether
// each input is a tree. /v1/encode returns the centers and the AHU encoding
// rooted at each center, or 422 with code NOT_A_TREE. /v1/form returns an
// isomorphism-invariant string for the graph; two graphs are isomorphic
// exactly when their forms are equal. Forms are cached when the server has
// a cache.
//
// Errors are JSON objects with the [errors.Code] and a message:
//
//	{"code": "INVALID_FORMAT", "message": "graph a: invalid graph6 header"}
//
// # Usage
//
//	srv := server.New(server.Config{Addr: ":8080"},
//	    server.WithLogger(logger),
//	    server.WithMetrics(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
//	err := srv.ListenAndServe(ctx)
//
// [errors.Code]: github.com/matzehuels/isobench/pkg/errors.Code
package server
