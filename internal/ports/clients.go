package ports

import (
	"context"

	"github.com/jsamuelsen11/api-conventions/internal/domain/api"
	"github.com/jsamuelsen11/api-conventions/internal/domain/convention"
)

// SourceProvider supplies convention sources by name.
// Implemented by the manifest catalog and the convention registry client.
type SourceProvider interface {
	// GetSource returns the named source.
	// Returns domain.ErrNotFound if the provider has no such source.
	GetSource(ctx context.Context, name string) (*convention.Source, error)

	// ListSources returns every source the provider knows, in provider order.
	ListSources(ctx context.Context) ([]*convention.Source, error)
}

// ActionRepository supplies the catalogued API surface.
// Implemented by the manifest catalog.
type ActionRepository interface {
	// GetAction returns the action with the given ID.
	// Returns domain.ErrNotFound if the action does not exist.
	GetAction(ctx context.Context, id string) (*api.Action, error)

	// ListActions returns all catalogued actions ordered by ID.
	ListActions(ctx context.Context) ([]*api.Action, error)
}

// SourceCache stores convention sources fetched from slow providers.
// Implemented by the redis cache adapter.
type SourceCache interface {
	// Get returns the cached source. A miss is reported as (nil, false, nil).
	Get(ctx context.Context, name string) (*convention.Source, bool, error)

	// Set stores the source under its name.
	Set(ctx context.Context, src *convention.Source) error
}
