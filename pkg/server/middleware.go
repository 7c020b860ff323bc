package server

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/isobench/pkg/observability"
)

// observe reports every request to the HTTP hooks and logs it. Requests are
// labeled with the matched route pattern so path parameters do not inflate
// metric cardinality.
func observe(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			start := time.Now()
			hooks := observability.HTTP()

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			hooks.OnRequest(ctx, r.Method, r.URL.Path)
			next.ServeHTTP(ww, r)

			route := r.URL.Path
			if rc := chi.RouteContext(ctx); rc != nil && rc.RoutePattern() != "" {
				route = rc.RoutePattern()
			}
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			d := time.Since(start)
			hooks.OnResponse(ctx, r.Method, route, status, d)
			logger.Debug("request",
				"method", r.Method,
				"route", route,
				"status", status,
				"duration", d,
				"request_id", middleware.GetReqID(ctx))
		})
	}
}
