package middleware

import (
	"net/http"

	appctx "github.com/jsamuelsen11/api-conventions/internal/app/context"
)

// AppContext returns middleware that gives each request a resolution memo, so
// that every action in a batch shares one fetch of each convention source.
// A memo already placed on the context by an outer caller is kept.
func AppContext() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := appctx.FromContext(r.Context()); ok {
				next.ServeHTTP(w, r)
				return
			}
			rc := appctx.New(r.Context())
			next.ServeHTTP(w, r.WithContext(appctx.WithRequestContext(r.Context(), rc)))
		})
	}
}
