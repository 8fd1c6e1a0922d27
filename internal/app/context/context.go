// Package appctx provides a request-scoped memo for orchestration services.
//
// RequestContext wraps a context.Context with an in-memory cache so that data
// needed several times within one request (a convention source referenced by
// many actions of a batch, say) is fetched once:
//
//	rc := appctx.New(ctx)
//	src, err := appctx.GetOrFetch(rc, "source:default", fetchSource)
//
// The HTTP AppContext middleware stores a RequestContext in every request's
// context; services pick it up with FromContext or create one with Ensure.
package appctx

import (
	"context"
	"errors"
	"fmt"
)

// ErrTypeMismatch is returned by GetOrFetch when a cached value's type does
// not match the requested type T. This indicates a programming error where
// the same cache key is used with different types.
var ErrTypeMismatch = errors.New("appctx: cached value type mismatch")

type contextKey struct{}

// RequestContext is a request-scoped context wrapper providing in-memory
// memoization via GetOrFetch.
//
// A RequestContext is strictly request-scoped and NOT safe for concurrent use
// from multiple goroutines. Fetch everything a request needs sequentially
// before fanning work out.
type RequestContext struct {
	context.Context
	cache map[string]cacheEntry
}

// cacheEntry stores the result of a GetOrFetch call, including any error.
// Both successful results and errors are cached to prevent redundant calls
// within the same request.
type cacheEntry struct {
	value any
	err   error
}

// New creates a RequestContext wrapping the given context.Context.
func New(ctx context.Context) *RequestContext {
	return &RequestContext{
		Context: ctx,
		cache:   make(map[string]cacheEntry),
	}
}

// WithRequestContext returns a copy of ctx carrying rc.
func WithRequestContext(ctx context.Context, rc *RequestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, rc)
}

// FromContext returns the RequestContext stored in ctx, if any.
func FromContext(ctx context.Context) (*RequestContext, bool) {
	rc, ok := ctx.Value(contextKey{}).(*RequestContext)
	return rc, ok && rc != nil
}

// Ensure returns the RequestContext stored in ctx, or a new one wrapping ctx.
func Ensure(ctx context.Context) *RequestContext {
	if rc, ok := FromContext(ctx); ok {
		return rc
	}
	return New(ctx)
}

// Len returns the number of memoized keys.
func (rc *RequestContext) Len() int {
	return len(rc.cache)
}

// GetOrFetch returns a cached value for the given key, or calls fetchFn to
// fetch and cache it. Both successful results and errors are cached to
// prevent redundant calls within the same request.
//
// The same key must always be used with the same type T. If a cached value
// exists but its type does not match T, GetOrFetch returns ErrTypeMismatch.
// Use DataProvider for type-safe, reusable fetch bindings that prevent this.
func GetOrFetch[T any](rc *RequestContext, key string, fetchFn func(ctx context.Context) (T, error)) (T, error) {
	if entry, ok := rc.cache[key]; ok {
		if entry.err != nil {
			var zero T
			return zero, entry.err
		}
		v, ok := entry.value.(T)
		if !ok {
			var zero T
			return zero, fmt.Errorf("%w: key %q holds %T, requested %T", ErrTypeMismatch, key, entry.value, zero)
		}
		return v, nil
	}

	val, err := fetchFn(rc.Context)
	rc.cache[key] = cacheEntry{value: val, err: err}
	return val, err
}

// DataProvider binds a key prefix and a keyed fetch function so callers can
// memoize lookups by identifier without repeating the key scheme.
type DataProvider[T any] struct {
	prefix  string
	fetchFn func(ctx context.Context, id string) (T, error)
}

// NewDataProvider creates a DataProvider whose cache keys are prefix + ":" + id.
func NewDataProvider[T any](prefix string, fetchFn func(ctx context.Context, id string) (T, error)) *DataProvider[T] {
	return &DataProvider[T]{prefix: prefix, fetchFn: fetchFn}
}

// Get returns the memoized value for id, fetching it on first use.
func (p *DataProvider[T]) Get(rc *RequestContext, id string) (T, error) {
	return GetOrFetch(rc, p.prefix+":"+id, func(ctx context.Context) (T, error) {
		return p.fetchFn(ctx, id)
	})
}
