package handlers_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/api-conventions/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/api-conventions/mocks"
)

// --- Liveness ---

func TestLiveness_AlwaysOK(t *testing.T) {
	t.Parallel()

	registry := mocks.NewMockHealthRegistry(t)
	h := handlers.NewHealthHandler(registry)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	h.Liveness(rec, req)

	requireStatus(t, rec, http.StatusOK)

	resp := decodeJSON[map[string]string](t, rec)
	if resp["status"] != "ok" {
		t.Errorf("status = %q, want %q", resp["status"], "ok")
	}
}

// --- Readiness ---

func TestReadiness(t *testing.T) {
	t.Parallel()

	timedOut := fmt.Errorf("redis-cache: %w: %w", errors.New("i/o timeout"), context.DeadlineExceeded)

	tests := []struct {
		name       string
		results    map[string]error
		optional   []string
		wantCode   int
		wantStatus string
		wantChecks []handlers.CheckResult
	}{
		{
			name:       "no checkers",
			results:    map[string]error{},
			wantCode:   http.StatusOK,
			wantStatus: "ready",
			wantChecks: []handlers.CheckResult{},
		},
		{
			name: "all healthy",
			results: map[string]error{
				"redis-cache":         nil,
				"convention-registry": nil,
			},
			optional:   []string{"redis-cache"},
			wantCode:   http.StatusOK,
			wantStatus: "ready",
			wantChecks: []handlers.CheckResult{
				{Name: "convention-registry", Status: "ok"},
				{Name: "redis-cache", Status: "ok", Optional: true},
			},
		},
		{
			name: "registry failing",
			results: map[string]error{
				"convention-registry": errors.New("convention-registry: failing (circuit breaker open)"),
				"redis-cache":         nil,
			},
			optional:   []string{"redis-cache"},
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: "not_ready",
			wantChecks: []handlers.CheckResult{
				{Name: "convention-registry", Status: "failing", Error: "convention-registry: failing (circuit breaker open)"},
				{Name: "redis-cache", Status: "ok", Optional: true},
			},
		},
		{
			name: "cache timing out degrades",
			results: map[string]error{
				"convention-registry": nil,
				"redis-cache":         timedOut,
			},
			optional:   []string{"redis-cache"},
			wantCode:   http.StatusOK,
			wantStatus: "degraded",
			wantChecks: []handlers.CheckResult{
				{Name: "convention-registry", Status: "ok"},
				{Name: "redis-cache", Status: "failing", Optional: true, TimedOut: true, Error: timedOut.Error()},
			},
		},
		{
			name: "cache required without option",
			results: map[string]error{
				"redis-cache": errors.New("connection refused"),
			},
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: "not_ready",
			wantChecks: []handlers.CheckResult{
				{Name: "redis-cache", Status: "failing", Error: "connection refused"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			registry := mocks.NewMockHealthRegistry(t)
			registry.EXPECT().CheckAll(mock.Anything).Return(tt.results)

			h := handlers.NewHealthHandler(registry, handlers.WithOptionalChecks(tt.optional...))

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
			h.Readiness(rec, req)

			requireStatus(t, rec, tt.wantCode)

			resp := decodeJSON[handlers.ReadinessResponse](t, rec)
			if resp.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", resp.Status, tt.wantStatus)
			}
			if diff := cmp.Diff(tt.wantChecks, resp.Checks); diff != "" {
				t.Errorf("checks mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
