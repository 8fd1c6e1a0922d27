package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/api-conventions/internal/adapters/http/dto"
	"github.com/jsamuelsen11/api-conventions/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/api-conventions/internal/domain"
	"github.com/jsamuelsen11/api-conventions/internal/domain/api"
	"github.com/jsamuelsen11/api-conventions/internal/domain/convention"
	"github.com/jsamuelsen11/api-conventions/mocks"
)

// --- ListActions ---

func TestListActions_Success(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockResolutionService(t)
	svc.EXPECT().ListActions(mock.Anything).Return([]*api.Action{validAction()}, nil)

	h := handlers.NewCatalogHandler(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/actions", nil)
	h.ListActions(rec, req)

	requireStatus(t, rec, http.StatusOK)

	resp := decodeJSON[dto.ActionListResponse](t, rec)
	if resp.Count != 1 {
		t.Fatalf("Count = %d, want 1", resp.Count)
	}
	got := resp.Actions[0]
	if got.ID != testActionID || got.Module != "Shop" || got.Type != "WidgetsController" {
		t.Errorf("Actions[0] = %+v", got)
	}
}

func TestListActions_Empty(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockResolutionService(t)
	svc.EXPECT().ListActions(mock.Anything).Return(nil, nil)

	h := handlers.NewCatalogHandler(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/actions", nil)
	h.ListActions(rec, req)

	requireStatus(t, rec, http.StatusOK)

	resp := decodeJSON[map[string]any](t, rec)
	if actions, ok := resp["actions"].([]any); !ok || len(actions) != 0 {
		t.Errorf("actions = %v, want empty array", resp["actions"])
	}
}

// --- ListConventions ---

func TestListConventions_Success(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockResolutionService(t)
	svc.EXPECT().ListSources(mock.Anything).Return([]*convention.Source{
		convention.NewSource("rest"),
		convention.DefaultSource(),
	}, nil)

	h := handlers.NewCatalogHandler(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/conventions", nil)
	h.ListConventions(rec, req)

	requireStatus(t, rec, http.StatusOK)

	resp := decodeJSON[dto.SourceListResponse](t, rec)
	if resp.Count != 2 {
		t.Fatalf("Count = %d, want 2", resp.Count)
	}
	if resp.Sources[0].Name != "rest" || resp.Sources[1].Name != convention.DefaultSourceName {
		t.Errorf("source order = %q, %q", resp.Sources[0].Name, resp.Sources[1].Name)
	}
	if len(resp.Sources[1].Definitions) == 0 {
		t.Error("default source has no definitions")
	}
}

func TestListConventions_Error(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockResolutionService(t)
	svc.EXPECT().ListSources(mock.Anything).Return(nil, domain.ErrUnavailable)

	h := handlers.NewCatalogHandler(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/conventions", nil)
	h.ListConventions(rec, req)

	requireStatus(t, rec, http.StatusBadGateway)
}

// --- GetConvention ---

func TestGetConvention_Success(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockResolutionService(t)
	svc.EXPECT().GetSource(mock.Anything, "default").Return(convention.DefaultSource(), nil)

	h := handlers.NewCatalogHandler(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/conventions/default", nil)
	req = withChiParams(req, map[string]string{"name": "default"})
	h.GetConvention(rec, req)

	requireStatus(t, rec, http.StatusOK)

	resp := decodeJSON[map[string]any](t, rec)
	if resp["name"] != "default" {
		t.Errorf("name = %v, want default", resp["name"])
	}
}

func TestGetConvention_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", domain.ErrNotFound, http.StatusNotFound},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewMockResolutionService(t)
			svc.EXPECT().GetSource(mock.Anything, "rest").Return(nil, tt.err)

			h := handlers.NewCatalogHandler(svc)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/conventions/rest", nil)
			req = withChiParams(req, map[string]string{"name": "rest"})
			h.GetConvention(rec, req)

			requireStatus(t, rec, tt.wantStatus)
		})
	}
}
