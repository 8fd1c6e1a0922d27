package ports

import (
	"context"

	"github.com/jsamuelsen11/api-conventions/internal/domain/api"
	"github.com/jsamuelsen11/api-conventions/internal/domain/convention"
)

// ResolutionService defines the service port for convention resolution.
// Implemented by the application layer; called by inbound adapters (HTTP
// handlers and the CLI).
type ResolutionService interface {
	// Resolve resolves a single action. The action is taken from the request
	// body or, when only ActionID is set, from the action catalog.
	// Returns domain.ErrValidation if the request is malformed and
	// domain.ErrNotFound if a named action or source does not exist.
	Resolve(ctx context.Context, req ResolutionRequest) (*Resolution, error)

	// ResolveBatch resolves many requests concurrently. Uses partial success
	// semantics: each item succeeds or fails independently and results keep
	// the input order. Returns a hard error only for request-level failures.
	ResolveBatch(ctx context.Context, reqs []ResolutionRequest) (*BatchResult, error)

	// ListActions returns all catalogued actions.
	ListActions(ctx context.Context) ([]*api.Action, error)

	// ListSources returns all known convention sources, local ones first.
	ListSources(ctx context.Context) ([]*convention.Source, error)

	// GetSource returns a convention source by name.
	// Returns domain.ErrNotFound if no provider has the source.
	GetSource(ctx context.Context, name string) (*convention.Source, error)
}

// ResolutionRequest identifies an action and the sources to resolve it
// against. Exactly one of ActionID and Action must be set. When Sources is
// empty, the sources applied to the action by annotations are used, falling
// back to the built-in default source.
type ResolutionRequest struct {
	ActionID string
	Action   *api.Action
	Sources  []string
}

// Resolution is the result of resolving one action, together with the action
// and the ordered source names that were searched.
type Resolution struct {
	Action  *api.Action
	Sources []string
	Result  convention.Result
}

// BatchError records a single failed item within a batch resolution.
type BatchError struct {
	Index int
	Err   error
}

// BatchResult holds the outcomes of a batch resolution. Resolved and Errors
// are both indexed by the input position; Resolved[i] is nil when item i
// failed.
type BatchResult struct {
	Resolved []*Resolution
	Errors   []BatchError
}
