package middleware_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/api-conventions/internal/adapters/http/middleware"
	appctx "github.com/jsamuelsen11/api-conventions/internal/app/context"
)

func TestChain_Empty(t *testing.T) {
	t.Parallel()

	handler := middleware.Chain()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("bare"))
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if rec.Body.String() != "bare" {
		t.Errorf("body = %q, want %q", rec.Body.String(), "bare")
	}
}

func TestChain_Order(t *testing.T) {
	t.Parallel()

	var order []string

	mw := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name+":before")
				next.ServeHTTP(w, r)
				order = append(order, name+":after")
			})
		}
	}

	handler := middleware.Chain(
		mw("first"),
		mw("second"),
		mw("third"),
	)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		order = append(order, "handler")
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
	handler.ServeHTTP(rec, req)

	expected := []string{
		"first:before", "second:before", "third:before",
		"handler",
		"third:after", "second:after", "first:after",
	}

	if len(order) != len(expected) {
		t.Fatalf("execution order length = %d, want %d: %v", len(order), len(expected), order)
	}
	for i, got := range order {
		if got != expected[i] {
			t.Errorf("order[%d] = %q, want %q", i, got, expected[i])
		}
	}
}

func TestChain_SkipsNil(t *testing.T) {
	t.Parallel()

	var order []string
	mark := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	handler := middleware.Chain(nil, mark("outer"), nil, mark("inner"), nil)(
		http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}),
	)
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	if want := []string{"outer", "inner"}; !slices.Equal(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
}

func TestStack(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	var (
		reqID, corrID string
		memo          bool
		deadline      bool
	)

	r := chi.NewRouter()
	r.Use(middleware.Stack(testLogger(&buf), nil, 5*time.Second))
	r.Get("/api/v1/actions/{id}/resolution", func(w http.ResponseWriter, r *http.Request) {
		reqID = middleware.RequestIDFromContext(r.Context())
		corrID = middleware.CorrelationIDFromContext(r.Context())
		_, memo = appctx.FromContext(r.Context())
		_, deadline = r.Context().Deadline()
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("{}"))
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/actions/orders.find/resolution", http.NoBody)
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if reqID == "" || rec.Header().Get("X-Request-ID") != reqID {
		t.Errorf("request ID = %q, header = %q", reqID, rec.Header().Get("X-Request-ID"))
	}
	if corrID != reqID {
		t.Errorf("correlation ID = %q, want request ID %q", corrID, reqID)
	}
	if !memo {
		t.Error("resolution memo not in context")
	}
	if !deadline {
		t.Error("handler context has no deadline")
	}

	logOutput := buf.String()
	for _, want := range []string{"request completed", "route=/api/v1/actions/{id}/resolution", "request_id=" + reqID} {
		if !strings.Contains(logOutput, want) {
			t.Errorf("log output missing %q", want)
		}
	}
}

func TestStack_ZeroTimeoutLeavesDeadlineUnset(t *testing.T) {
	t.Parallel()

	deadline := true
	handler := middleware.Stack(discardLogger(), nil, 0)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		_, deadline = r.Context().Deadline()
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health/live", http.NoBody))

	if deadline {
		t.Error("handler context has a deadline with timeout disabled")
	}
}
