package handlers

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/api-conventions/internal/ports"
)

const (
	statusOK       = "ok"
	statusFailing  = "failing"
	statusReady    = "ready"
	statusDegraded = "degraded"
	statusNotReady = "not_ready"
)

// HealthOption configures a HealthHandler.
type HealthOption func(*HealthHandler)

// WithOptionalChecks names checks whose failure degrades the service without
// taking it out of rotation. The registry source cache is one: a cache miss
// falls through to the registry.
func WithOptionalChecks(names ...string) HealthOption {
	return func(h *HealthHandler) {
		for _, n := range names {
			h.optional[n] = struct{}{}
		}
	}
}

// HealthHandler handles liveness and readiness HTTP endpoints.
type HealthHandler struct {
	registry ports.HealthRegistry
	optional map[string]struct{}
}

// NewHealthHandler creates a new HealthHandler with the given health registry.
func NewHealthHandler(registry ports.HealthRegistry, opts ...HealthOption) *HealthHandler {
	h := &HealthHandler{registry: registry, optional: map[string]struct{}{}}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// CheckResult is the readiness outcome of one named dependency.
type CheckResult struct {
	Name     string `json:"name"`
	Status   string `json:"status"`
	Optional bool   `json:"optional,omitempty"`
	TimedOut bool   `json:"timed_out,omitempty"`
	Error    string `json:"error,omitempty"`
}

// ReadinessResponse is the body of GET /health/ready. Checks are sorted by
// name.
type ReadinessResponse struct {
	Status string        `json:"status"`
	Checks []CheckResult `json:"checks"`
}

// Liveness handles GET /health/live. Always returns 200 OK.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": statusOK})
}

// Readiness handles GET /health/ready. A failing required check answers 503
// not_ready; failing optional checks alone answer 200 degraded.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())

	resp := ReadinessResponse{Status: statusReady, Checks: make([]CheckResult, 0, len(results))}
	code := http.StatusOK

	for name, err := range results {
		_, optional := h.optional[name]
		res := CheckResult{Name: name, Status: statusOK, Optional: optional}

		if err != nil {
			res.Status = statusFailing
			res.Error = err.Error()
			res.TimedOut = errors.Is(err, context.DeadlineExceeded)

			switch {
			case !optional:
				resp.Status = statusNotReady
				code = http.StatusServiceUnavailable
			case resp.Status == statusReady:
				resp.Status = statusDegraded
			}
		}
		resp.Checks = append(resp.Checks, res)
	}

	slices.SortFunc(resp.Checks, func(a, b CheckResult) int { return strings.Compare(a.Name, b.Name) })
	writeJSON(w, code, resp)
}
