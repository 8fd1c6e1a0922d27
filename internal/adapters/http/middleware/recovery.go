package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/api-conventions/internal/adapters/http/dto"
)

// errInternalServer is all a client learns about a recovered panic.
var errInternalServer = errors.New("internal server error")

// Recovery returns middleware that turns a handler panic into an RFC 9457
// 500 response and an error log carrying the stack, the matched route and
// the action or convention being resolved. When the response has already
// started only the log entry is emitted. http.ErrAbortHandler is re-raised
// so the server can abort the connection quietly.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := newResponseWriter(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(v)
				}

				logger.ErrorContext(r.Context(), "panic recovered", panicAttrs(rw, r, v)...)

				if !rw.headerWritten {
					dto.WriteErrorResponse(rw, r, errInternalServer)
				}
			}()

			next.ServeHTTP(rw, r)
		})
	}
}

func panicAttrs(rw *responseWriter, r *http.Request, v any) []any {
	attrs := []any{
		slog.String("panic", fmt.Sprint(v)),
		slog.String("stack", string(debug.Stack())),
		slog.String("method", r.Method),
		slog.String("route", routePattern(r)),
	}
	// Recovery sits outside RequestID, so the ID is read back from the
	// response header it set.
	if id := rw.Header().Get(headerRequestID); id != "" {
		attrs = append(attrs, slog.String("request_id", id))
	}
	if id := chi.URLParam(r, "id"); id != "" {
		attrs = append(attrs, slog.String("action_id", id))
	}
	if name := chi.URLParam(r, "name"); name != "" {
		attrs = append(attrs, slog.String("convention", name))
	}
	return attrs
}
