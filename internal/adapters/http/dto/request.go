package dto

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jsamuelsen11/api-conventions/internal/adapters/document"
	"github.com/jsamuelsen11/api-conventions/internal/domain"
	"github.com/jsamuelsen11/api-conventions/internal/ports"
)

const (
	msgRequired      = "is required"
	msgMustNotEmpty  = "must not be empty"
	msgExclusiveWith = "must not be combined with action"
)

// ResolveRequest represents the JSON body for resolving one action. Exactly
// one of ActionID and Action must be set. Sources is optional.
type ResolveRequest struct {
	ActionID string                    `json:"action_id,omitempty"`
	Action   *document.InlineActionDoc `json:"action,omitempty"`
	Sources  []string                  `json:"sources,omitempty"`
}

// Validate checks that exactly one action reference is present and that any
// listed source names are non-empty. Returns a *domain.ValidationError if any
// checks fail.
func (r *ResolveRequest) Validate() error {
	fields := make(map[string]string)
	r.validateInto("", fields)

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

func (r *ResolveRequest) validateInto(prefix string, fields map[string]string) {
	switch {
	case r.ActionID == "" && r.Action == nil:
		fields[prefix+"action_id"] = msgRequired
	case r.ActionID != "" && r.Action != nil:
		fields[prefix+"action_id"] = msgExclusiveWith
	}
	for i, s := range r.Sources {
		if strings.TrimSpace(s) == "" {
			fields[fmt.Sprintf("%ssources[%d]", prefix, i)] = msgMustNotEmpty
		}
	}
}

// ToDomain converts the request to a ports.ResolutionRequest. An inline
// action is converted through the document translators; its validation
// fields are reported under "action.".
func (r *ResolveRequest) ToDomain() (ports.ResolutionRequest, error) {
	req := ports.ResolutionRequest{ActionID: r.ActionID, Sources: r.Sources}
	if r.Action == nil {
		return req, nil
	}

	action, err := document.ToDomainInlineAction(*r.Action)
	if err != nil {
		return req, prefixFields("action.", err)
	}
	req.Action = action
	return req, nil
}

// BatchResolveRequest represents the JSON body for resolving many actions.
type BatchResolveRequest struct {
	Requests []ResolveRequest `json:"requests"`
}

// Validate checks that the batch is non-empty and that every item is
// well-formed. Item fields are reported as "requests[i].field".
func (r *BatchResolveRequest) Validate() error {
	fields := make(map[string]string)

	if len(r.Requests) == 0 {
		fields["requests"] = msgMustNotEmpty
	}
	for i := range r.Requests {
		r.Requests[i].validateInto(fmt.Sprintf("requests[%d].", i), fields)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToDomain converts every item. The first conversion failure is returned
// with its fields prefixed by the item index.
func (r *BatchResolveRequest) ToDomain() ([]ports.ResolutionRequest, error) {
	out := make([]ports.ResolutionRequest, len(r.Requests))
	for i := range r.Requests {
		req, err := r.Requests[i].ToDomain()
		if err != nil {
			return nil, prefixFields(fmt.Sprintf("requests[%d].", i), err)
		}
		out[i] = req
	}
	return out, nil
}

// prefixFields re-keys the fields of a *domain.ValidationError. Other errors
// are returned unchanged.
func prefixFields(prefix string, err error) error {
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		return err
	}
	fields := make(map[string]string, len(verr.Fields))
	for k, v := range verr.Fields {
		fields[prefix+k] = v
	}
	return &domain.ValidationError{Fields: fields}
}
