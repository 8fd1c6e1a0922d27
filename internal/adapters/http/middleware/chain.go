// Package middleware provides the inbound request pipeline of the resolution
// API. Stack assembles it in this order:
//
//	Recovery → RequestID → CorrelationID → AppContext → OpenTelemetry → Logging → Timeout → Handler
//
// Each middleware is a func(http.Handler) http.Handler and can be composed
// with Chain.
package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/jsamuelsen11/api-conventions/internal/platform/telemetry"
)

// Chain composes middleware so that the first argument is outermost:
//
//	Chain(Recovery, RequestID, Logging)(handler)
//
// is Recovery(RequestID(Logging(handler))). Nil entries are skipped so
// optional stages can be left out in place.
func Chain(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(handler http.Handler) http.Handler {
		for _, mw := range slices.Backward(middlewares) {
			if mw != nil {
				handler = mw(handler)
			}
		}
		return handler
	}
}

// Stack returns the service pipeline. Every request gets its own resolution
// memo (AppContext) before tracing starts, so a batch fetches each convention
// source once. A non-positive timeout leaves the Timeout stage out; a nil
// metrics records spans only.
func Stack(logger *slog.Logger, metrics *telemetry.Metrics, timeout time.Duration) func(http.Handler) http.Handler {
	var deadline func(http.Handler) http.Handler
	if timeout > 0 {
		deadline = Timeout(timeout)
	}

	return Chain(
		Recovery(logger),
		RequestID(),
		CorrelationID(),
		AppContext(),
		OpenTelemetry(metrics),
		Logging(logger),
		deadline,
	)
}
