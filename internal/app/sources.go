package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/api-conventions/internal/domain"
	"github.com/jsamuelsen11/api-conventions/internal/domain/convention"
	"github.com/jsamuelsen11/api-conventions/internal/ports"
)

// Compile-time checks that the source decorators implement ports.SourceProvider.
var (
	_ ports.SourceProvider = (*SourceChain)(nil)
	_ ports.SourceProvider = (*CachedSources)(nil)
)

// SourceChain consults several SourceProviders in order. The first provider
// that has a source wins, so local catalogs shadow the remote registry.
type SourceChain struct {
	providers []ports.SourceProvider
	logger    *slog.Logger
}

// NewSourceChain creates a SourceChain over providers. Nil providers are
// skipped so optional adapters can be passed unconditionally.
func NewSourceChain(logger *slog.Logger, providers ...ports.SourceProvider) *SourceChain {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	chain := &SourceChain{logger: logger}
	for _, p := range providers {
		if p != nil {
			chain.providers = append(chain.providers, p)
		}
	}
	return chain
}

// GetSource returns the source from the first provider that has it. Provider
// failures other than domain.ErrNotFound are returned only when no later
// provider has the source either.
func (c *SourceChain) GetSource(ctx context.Context, name string) (*convention.Source, error) {
	var failures []error
	for _, p := range c.providers {
		src, err := p.GetSource(ctx, name)
		if err == nil {
			return src, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			failures = append(failures, err)
		}
	}
	if len(failures) > 0 {
		return nil, errors.Join(failures...)
	}
	return nil, fmt.Errorf("convention source %q: %w", name, domain.ErrNotFound)
}

// ListSources merges the providers' sources. A name already listed by an
// earlier provider is skipped. A failing provider is logged and left out.
func (c *SourceChain) ListSources(ctx context.Context) ([]*convention.Source, error) {
	var out []*convention.Source
	seen := make(map[string]struct{})
	for i, p := range c.providers {
		srcs, err := p.ListSources(ctx)
		if err != nil {
			c.logger.WarnContext(ctx, "skipping convention provider",
				slog.String("operation", "ListSources"),
				slog.Int("provider", i),
				slog.Any("error", err),
			)
			continue
		}
		for _, src := range srcs {
			if _, dup := seen[src.Name]; dup {
				continue
			}
			seen[src.Name] = struct{}{}
			out = append(out, src)
		}
	}
	return out, nil
}

// CachedSources puts a SourceCache in front of a SourceProvider. Cache
// failures are logged and bypassed.
type CachedSources struct {
	next   ports.SourceProvider
	cache  ports.SourceCache
	logger *slog.Logger
}

// NewCachedSources wraps next with cache.
func NewCachedSources(next ports.SourceProvider, cache ports.SourceCache, logger *slog.Logger) *CachedSources {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &CachedSources{next: next, cache: cache, logger: logger}
}

// GetSource returns the cached source or fetches and caches it.
func (c *CachedSources) GetSource(ctx context.Context, name string) (*convention.Source, error) {
	src, ok, err := c.cache.Get(ctx, name)
	switch {
	case err != nil:
		c.logger.WarnContext(ctx, "convention cache read failed",
			slog.String("operation", "GetSource"),
			slog.String("source", name),
			slog.Any("error", err),
		)
	case ok:
		return src, nil
	}

	src, err = c.next.GetSource(ctx, name)
	if err != nil {
		return nil, err
	}
	c.store(ctx, src)
	return src, nil
}

// ListSources lists from the wrapped provider and refreshes the cache.
func (c *CachedSources) ListSources(ctx context.Context) ([]*convention.Source, error) {
	srcs, err := c.next.ListSources(ctx)
	if err != nil {
		return nil, err
	}
	for _, src := range srcs {
		c.store(ctx, src)
	}
	return srcs, nil
}

func (c *CachedSources) store(ctx context.Context, src *convention.Source) {
	if err := c.cache.Set(ctx, src); err != nil {
		c.logger.WarnContext(ctx, "convention cache write failed",
			slog.String("operation", "store"),
			slog.String("source", src.Name),
			slog.Any("error", err),
		)
	}
}
