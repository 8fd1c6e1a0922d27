// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"github.com/jsamuelsen11/api-conventions/internal/adapters/document"
	"github.com/jsamuelsen11/api-conventions/internal/domain/api"
	"github.com/jsamuelsen11/api-conventions/internal/domain/convention"
	"github.com/jsamuelsen11/api-conventions/internal/ports"
)

// ResolutionResponse represents a single resolution in HTTP responses.
type ResolutionResponse = document.ResolutionDoc

// BatchItemResponse is one entry of a batch response. Exactly one of
// Resolution and Error is set.
type BatchItemResponse struct {
	Index      int                 `json:"index"`
	Resolution *ResolutionResponse `json:"resolution,omitempty"`
	Error      *ErrorResponse      `json:"error,omitempty"`
}

// BatchResolutionResponse represents the result of a batch resolution.
// Results keep the request order.
type BatchResolutionResponse struct {
	Results   []BatchItemResponse `json:"results"`
	Succeeded int                 `json:"succeeded"`
	Failed    int                 `json:"failed"`
}

// ActionListResponse represents the catalogued actions in HTTP responses.
type ActionListResponse struct {
	Actions []document.ActionSummaryDoc `json:"actions"`
	Count   int                         `json:"count"`
}

// SourceListResponse represents the known convention sources. It has the
// same shape the registry client reads, so one instance can serve another.
type SourceListResponse struct {
	Sources []document.SourceDoc `json:"sources"`
	Count   int                  `json:"count"`
}

// ToResolutionResponse converts a resolution to its response DTO.
func ToResolutionResponse(res *ports.Resolution) ResolutionResponse {
	return document.FromDomainResolution(res)
}

// ToBatchResolutionResponse converts a batch result. Item errors are rendered
// as problem details; instance is the batch request URI.
func ToBatchResolutionResponse(result *ports.BatchResult, instance string) BatchResolutionResponse {
	failed := make(map[int]error, len(result.Errors))
	for _, be := range result.Errors {
		failed[be.Index] = be.Err
	}

	resp := BatchResolutionResponse{Results: make([]BatchItemResponse, len(result.Resolved))}
	for i, res := range result.Resolved {
		item := BatchItemResponse{Index: i}
		if err, ok := failed[i]; ok {
			problem := newErrorResponse(err, instance)
			item.Error = &problem
			resp.Failed++
		} else if res != nil {
			doc := ToResolutionResponse(res)
			item.Resolution = &doc
			resp.Succeeded++
		}
		resp.Results[i] = item
	}
	return resp
}

// ToActionListResponse converts catalogued actions to a list response.
func ToActionListResponse(actions []*api.Action) ActionListResponse {
	items := make([]document.ActionSummaryDoc, len(actions))
	for i, a := range actions {
		items[i] = document.FromDomainAction(a)
	}
	return ActionListResponse{Actions: items, Count: len(items)}
}

// ToSourceResponse converts a convention source to its response DTO.
func ToSourceResponse(src *convention.Source) document.SourceDoc {
	return document.FromDomainSource(src)
}

// ToSourceListResponse converts convention sources to a list response.
func ToSourceListResponse(srcs []*convention.Source) SourceListResponse {
	items := make([]document.SourceDoc, len(srcs))
	for i, s := range srcs {
		items[i] = ToSourceResponse(s)
	}
	return SourceListResponse{Sources: items, Count: len(items)}
}
