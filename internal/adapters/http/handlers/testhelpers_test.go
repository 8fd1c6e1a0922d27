package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/api-conventions/internal/domain"
	"github.com/jsamuelsen11/api-conventions/internal/domain/api"
	"github.com/jsamuelsen11/api-conventions/internal/domain/convention"
	"github.com/jsamuelsen11/api-conventions/internal/ports"
)

const testActionID = "Shop.WidgetsController.FindWidget"

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func validAction() *api.Action {
	mod := &api.Module{Name: "Shop"}
	return &api.Action{
		ID: testActionID,
		Signature: api.Signature{
			Name:       "FindWidget",
			Parameters: []api.Parameter{{Name: "widgetId", Type: "int"}},
		},
		DeclaringType: &api.Type{Name: "WidgetsController", Module: mod},
	}
}

func validResolution() *ports.Resolution {
	src := convention.DefaultSource()
	def, _ := src.Find("Find")
	return &ports.Resolution{
		Action:  validAction(),
		Sources: []string{convention.DefaultSourceName},
		Result: convention.Result{
			Outcomes: []domain.Outcome{
				{Status: 200},
				{Status: 404, Type: domain.ProblemDetails},
			},
			ErrorType:      domain.ProblemDetails,
			Convention:     def,
			Match:          convention.MatchMatched,
			ErrorTypeScope: convention.ScopeDefault,
		},
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
