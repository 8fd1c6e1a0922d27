// Package registry implements the outbound adapter for the remote convention
// registry. Registry documents are translated to domain sources through the
// shared document translators, and HTTP failures are mapped to domain errors.
package registry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/jsamuelsen11/api-conventions/internal/adapters/document"
	"github.com/jsamuelsen11/api-conventions/internal/domain"
	"github.com/jsamuelsen11/api-conventions/internal/domain/convention"
	"github.com/jsamuelsen11/api-conventions/internal/platform/httpclient"
	"github.com/jsamuelsen11/api-conventions/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.SourceProvider = (*Client)(nil)
	_ ports.HealthChecker  = (*Client)(nil)
)

// SourceListDTO is the registry's response to GET /api/v1/conventions.
type SourceListDTO struct {
	Sources []document.SourceDoc `json:"sources"`
	Count   int                  `json:"count"`
}

// Client fetches convention sources from the registry. The underlying
// [httpclient.Client] provides circuit breaking, rate limiting, retry with
// exponential backoff, and tracing for every call.
type Client struct {
	req    *requester
	http   *httpclient.Client
	logger *slog.Logger
}

// NewClient creates a registry Client. The httpclient's BaseURL should point
// at the registry root (e.g. "http://convention-registry:8080").
func NewClient(client *httpclient.Client, logger *slog.Logger) *Client {
	return &Client{
		req:    &requester{client: client, logger: logger},
		http:   client,
		logger: logger,
	}
}

// GetSource fetches one source from GET /api/v1/conventions/{name}.
// Returns [domain.ErrNotFound] if the registry returns 404. A malformed
// document is the registry's fault, so it surfaces as [domain.ErrUnavailable]
// and the field errors are kept only in the message.
func (c *Client) GetSource(ctx context.Context, name string) (*convention.Source, error) {
	path := "/api/v1/conventions/" + url.PathEscape(name)

	var dto document.SourceDoc
	if err := c.req.get(ctx, path, &dto); err != nil {
		return nil, err
	}
	src, err := document.ToDomainSource(dto)
	if err != nil {
		return nil, fmt.Errorf("registry source %q is malformed: %v: %w", name, err, domain.ErrUnavailable)
	}
	return src, nil
}

// ListSources fetches every source from GET /api/v1/conventions. Malformed
// entries are logged and skipped.
func (c *Client) ListSources(ctx context.Context) ([]*convention.Source, error) {
	var dto SourceListDTO
	if err := c.req.get(ctx, "/api/v1/conventions", &dto); err != nil {
		return nil, err
	}

	out := make([]*convention.Source, 0, len(dto.Sources))
	for _, sd := range dto.Sources {
		src, err := document.ToDomainSource(sd)
		if err != nil {
			c.logger.WarnContext(ctx, "skipping malformed registry source",
				slog.String("operation", "registry.ListSources"),
				slog.String("source", sd.Name),
				slog.Any("error", err),
			)
			continue
		}
		out = append(out, src)
	}
	return out, nil
}

// Name returns the identifier used when this client is registered with a
// [ports.HealthRegistry].
func (c *Client) Name() string {
	return c.http.Name()
}

// HealthCheck reports the registry's availability from the circuit breaker
// state; no network call is made.
func (c *Client) HealthCheck(ctx context.Context) error {
	return c.http.HealthCheck(ctx)
}

// errUnavailable tags transport failures as domain.ErrUnavailable unless the
// caller's context ended.
func errUnavailable(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return fmt.Errorf("%w: %w", domain.ErrUnavailable, err)
}
