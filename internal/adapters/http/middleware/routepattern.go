package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// unmatchedRoute labels requests that did not match a registered route, so
// unknown paths do not inflate metric cardinality.
const unmatchedRoute = "unmatched"

// routePattern returns the chi route pattern matched for r, such as
// "/api/v1/conventions/{name}". It is only complete after the router has
// served the request.
func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return unmatchedRoute
	}
	if p := rctx.RoutePattern(); p != "" {
		return p
	}
	return unmatchedRoute
}
