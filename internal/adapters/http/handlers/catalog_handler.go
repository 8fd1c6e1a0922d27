package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/api-conventions/internal/adapters/http/dto"
	"github.com/jsamuelsen11/api-conventions/internal/ports"
)

// CatalogHandler serves the read-only catalog: actions and convention sources.
type CatalogHandler struct {
	svc ports.ResolutionService
}

// NewCatalogHandler creates a new CatalogHandler with the given service port.
func NewCatalogHandler(svc ports.ResolutionService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

// ListActions handles GET /api/v1/actions.
func (h *CatalogHandler) ListActions(w http.ResponseWriter, r *http.Request) {
	actions, err := h.svc.ListActions(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToActionListResponse(actions))
}

// ListConventions handles GET /api/v1/conventions.
func (h *CatalogHandler) ListConventions(w http.ResponseWriter, r *http.Request) {
	srcs, err := h.svc.ListSources(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToSourceListResponse(srcs))
}

// GetConvention handles GET /api/v1/conventions/{name}.
func (h *CatalogHandler) GetConvention(w http.ResponseWriter, r *http.Request) {
	src, err := h.svc.GetSource(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToSourceResponse(src))
}
