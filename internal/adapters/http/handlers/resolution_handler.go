package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/api-conventions/internal/adapters/http/dto"
	"github.com/jsamuelsen11/api-conventions/internal/ports"
)

// ResolutionHandler handles HTTP requests that resolve actions against
// convention sources.
type ResolutionHandler struct {
	svc ports.ResolutionService
}

// NewResolutionHandler creates a new ResolutionHandler with the given service port.
func NewResolutionHandler(svc ports.ResolutionService) *ResolutionHandler {
	return &ResolutionHandler{svc: svc}
}

// Resolve handles POST /api/v1/resolutions.
func (h *ResolutionHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	var body dto.ResolveRequest
	if !decodeAndValidate(w, r, &body) {
		return
	}

	req, err := body.ToDomain()
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	res, err := h.svc.Resolve(r.Context(), req)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToResolutionResponse(res))
}

// ResolveBatch handles POST /api/v1/resolutions/batch. Item failures are
// reported inline; the response is 200 unless the batch itself is rejected.
func (h *ResolutionHandler) ResolveBatch(w http.ResponseWriter, r *http.Request) {
	var body dto.BatchResolveRequest
	if !decodeAndValidate(w, r, &body) {
		return
	}

	reqs, err := body.ToDomain()
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	result, err := h.svc.ResolveBatch(r.Context(), reqs)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToBatchResolutionResponse(result, r.RequestURI))
}

// ResolveAction handles GET /api/v1/actions/{id}/resolution. Sources may be
// given as ?source= query parameters.
func (h *ResolutionHandler) ResolveAction(w http.ResponseWriter, r *http.Request) {
	req := ports.ResolutionRequest{
		ActionID: chi.URLParam(r, "id"),
		Sources:  sourcesQuery(r),
	}

	res, err := h.svc.Resolve(r.Context(), req)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToResolutionResponse(res))
}
