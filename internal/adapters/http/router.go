// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/api-conventions/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	resolutionHandler *handlers.ResolutionHandler,
	catalogHandler *handlers.CatalogHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	// API v1 routes.
	r.Route("/api/v1", func(r chi.Router) {
		// Resolution.
		r.Post("/resolutions", resolutionHandler.Resolve)
		r.Post("/resolutions/batch", resolutionHandler.ResolveBatch)

		// Catalogued actions.
		r.Get("/actions", catalogHandler.ListActions)
		r.Get("/actions/{id}/resolution", resolutionHandler.ResolveAction)

		// Convention sources.
		r.Get("/conventions", catalogHandler.ListConventions)
		r.Get("/conventions/{name}", catalogHandler.GetConvention)
	})

	return r
}
