package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	appctx "github.com/jsamuelsen11/api-conventions/internal/app/context"
	"github.com/jsamuelsen11/api-conventions/internal/app/fanout"
	"github.com/jsamuelsen11/api-conventions/internal/domain"
	"github.com/jsamuelsen11/api-conventions/internal/domain/annotation"
	"github.com/jsamuelsen11/api-conventions/internal/domain/api"
	"github.com/jsamuelsen11/api-conventions/internal/domain/convention"
	"github.com/jsamuelsen11/api-conventions/internal/platform/telemetry"
	"github.com/jsamuelsen11/api-conventions/internal/ports"
)

const (
	defaultMaxWorkers   = 8
	defaultMaxBatchSize = 100
	tracerName          = "github.com/jsamuelsen11/api-conventions/internal/app"
)

// Compile-time check that ResolutionService implements ports.ResolutionService.
var _ ports.ResolutionService = (*ResolutionService)(nil)

// ServiceOption configures a ResolutionService.
type ServiceOption func(*ResolutionService)

// WithMaxWorkers bounds the number of concurrent resolutions in a batch.
func WithMaxWorkers(n int) ServiceOption {
	return func(s *ResolutionService) {
		if n > 0 {
			s.maxWorkers = n
		}
	}
}

// WithMaxBatchSize bounds the number of requests in a batch.
func WithMaxBatchSize(n int) ServiceOption {
	return func(s *ResolutionService) {
		if n > 0 {
			s.maxBatch = n
		}
	}
}

// WithAnnotationReader replaces the default annotation lookup.
func WithAnnotationReader(reader annotation.Reader) ServiceOption {
	return func(s *ResolutionService) {
		if reader != nil {
			s.annotations = reader
		}
	}
}

// WithMetrics records resolution counts and durations on m.
func WithMetrics(m *telemetry.Metrics) ServiceOption {
	return func(s *ResolutionService) {
		s.metrics = m
	}
}

// ResolutionService implements ports.ResolutionService. It loads actions and
// convention sources through its ports, memoizing them per request, and runs
// the pure convention resolver over them.
type ResolutionService struct {
	sources     ports.SourceProvider
	actions     ports.ActionRepository
	matcher     convention.Matcher
	annotations annotation.Reader
	metrics     *telemetry.Metrics
	tracer      trace.Tracer
	maxWorkers  int
	maxBatch    int
	logger      *slog.Logger

	actionData *appctx.DataProvider[*api.Action]
	sourceData *appctx.DataProvider[*convention.Source]
}

// NewResolutionService creates a ResolutionService. sources supplies
// convention sources by name, actions the catalogued API surface, and matcher
// the structural matching predicate.
func NewResolutionService(
	sources ports.SourceProvider,
	actions ports.ActionRepository,
	matcher convention.Matcher,
	logger *slog.Logger,
	opts ...ServiceOption,
) *ResolutionService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &ResolutionService{
		sources:     sources,
		actions:     actions,
		matcher:     matcher,
		annotations: annotation.NewReader(),
		tracer:      otel.Tracer(tracerName),
		maxWorkers:  defaultMaxWorkers,
		maxBatch:    defaultMaxBatchSize,
		logger:      logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.actionData = appctx.NewDataProvider("action", actions.GetAction)
	s.sourceData = appctx.NewDataProvider("source", sources.GetSource)
	return s
}

// preparedRequest holds everything one resolution needs, fetched up front so
// the resolution itself is pure and can run on any goroutine.
type preparedRequest struct {
	action  *api.Action
	sources []*convention.Source
	pinned  convention.Set
}

// Resolve resolves a single action.
func (s *ResolutionService) Resolve(ctx context.Context, req ports.ResolutionRequest) (*ports.Resolution, error) {
	ctx, span := s.tracer.Start(ctx, "ResolutionService.Resolve")
	defer span.End()

	s.logger.InfoContext(ctx, "resolving action", slog.String("action", requestKey(req)))

	p, err := s.prepare(appctx.Ensure(ctx), req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.logger.ErrorContext(ctx, "failed to prepare resolution",
			slog.String("operation", "Resolve"),
			slog.String("action", requestKey(req)),
			slog.Any("error", err),
		)
		return nil, err
	}

	res := s.resolvePrepared(ctx, p)
	span.SetAttributes(
		attribute.String("convention.match", string(res.Result.Match)),
		attribute.Int("convention.outcomes", len(res.Result.Outcomes)),
	)
	return res, nil
}

// batchStats counts batch results by how their convention was chosen.
type batchStats map[convention.Match]int

// ResolveBatch resolves many requests. Inputs are loaded sequentially through
// the request memo, so a source shared by many items is fetched once, then
// resolved concurrently on at most maxWorkers goroutines.
func (s *ResolutionService) ResolveBatch(ctx context.Context, reqs []ports.ResolutionRequest) (*ports.BatchResult, error) {
	ctx, span := s.tracer.Start(ctx, "ResolutionService.ResolveBatch",
		trace.WithAttributes(attribute.Int("batch.size", len(reqs))),
	)
	defer span.End()

	s.logger.InfoContext(ctx, "resolving batch", slog.Int("count", len(reqs)))

	if err := s.validateBatch(reqs); err != nil {
		return nil, err
	}

	rc := appctx.Ensure(ctx)
	result := &ports.BatchResult{Resolved: make([]*ports.Resolution, len(reqs))}
	prepared := make([]*preparedRequest, len(reqs))
	work := make([]int, 0, len(reqs))

	for i, req := range reqs {
		p, err := s.prepare(rc, req)
		if err != nil {
			result.Errors = append(result.Errors, ports.BatchError{Index: i, Err: err})
			continue
		}
		prepared[i] = p
		work = append(work, i)
	}

	stats := appctx.NewRef(batchStats{})
	outcomes := fanout.Run(ctx, s.maxWorkers, work, func(ctx context.Context, idx int) (*ports.Resolution, error) {
		res := s.resolvePrepared(ctx, prepared[idx])
		stats.Update(func(st *batchStats) { (*st)[res.Result.Match]++ })
		return res, nil
	})

	for j, out := range outcomes {
		idx := work[j]
		if out.Err != nil {
			result.Errors = append(result.Errors, ports.BatchError{Index: idx, Err: out.Err})
			continue
		}
		result.Resolved[idx] = out.Value
	}
	slices.SortFunc(result.Errors, func(a, b ports.BatchError) int { return a.Index - b.Index })

	counts := stats.Get()
	s.logger.InfoContext(ctx, "batch resolved",
		slog.Int("count", len(reqs)),
		slog.Int("failed", len(result.Errors)),
		slog.Int("declared", counts[convention.MatchDeclared]),
		slog.Int("matched", counts[convention.MatchMatched]),
		slog.Int("unmatched", counts[convention.MatchNone]),
	)
	return result, nil
}

// ListActions returns all catalogued actions.
func (s *ResolutionService) ListActions(ctx context.Context) ([]*api.Action, error) {
	s.logger.InfoContext(ctx, "listing actions")

	actions, err := s.actions.ListActions(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list actions",
			slog.String("operation", "ListActions"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return actions, nil
}

// ListSources returns all known convention sources.
func (s *ResolutionService) ListSources(ctx context.Context) ([]*convention.Source, error) {
	s.logger.InfoContext(ctx, "listing convention sources")

	srcs, err := s.sources.ListSources(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list convention sources",
			slog.String("operation", "ListSources"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return srcs, nil
}

// GetSource returns a convention source by name.
func (s *ResolutionService) GetSource(ctx context.Context, name string) (*convention.Source, error) {
	s.logger.InfoContext(ctx, "fetching convention source", slog.String("source", name))

	src, err := s.sources.GetSource(ctx, name)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch convention source",
			slog.String("operation", "GetSource"),
			slog.String("source", name),
			slog.Any("error", err),
		)
		return nil, err
	}
	return src, nil
}

func (s *ResolutionService) validateBatch(reqs []ports.ResolutionRequest) error {
	switch {
	case len(reqs) == 0:
		return &domain.ValidationError{Fields: map[string]string{"requests": domain.MsgRequired}}
	case len(reqs) > s.maxBatch:
		return &domain.ValidationError{Fields: map[string]string{
			"requests": fmt.Sprintf("must contain at most %d items, got %d", s.maxBatch, len(reqs)),
		}}
	default:
		return nil
	}
}

func validateRequest(req ports.ResolutionRequest) error {
	fields := make(map[string]string)

	switch {
	case req.ActionID == "" && req.Action == nil:
		fields["action"] = "one of action_id or action is required"
	case req.ActionID != "" && req.Action != nil:
		fields["action"] = "action_id and action are mutually exclusive"
	}
	for i, name := range req.Sources {
		if name == "" {
			fields[fmt.Sprintf("sources[%d]", i)] = domain.MsgRequired
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	if req.Action != nil {
		return req.Action.Validate()
	}
	return nil
}

// prepare loads the action and every source its resolution can touch.
func (s *ResolutionService) prepare(rc *appctx.RequestContext, req ports.ResolutionRequest) (*preparedRequest, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	action := req.Action
	if action == nil {
		a, err := s.actionData.Get(rc, req.ActionID)
		if err != nil {
			return nil, fmt.Errorf("loading action %q: %w", req.ActionID, err)
		}
		action = a
	}

	names, implicit := req.Sources, false
	if len(names) == 0 {
		names = convention.AppliedSources(s.annotations, action)
	}
	if len(names) == 0 {
		names, implicit = []string{convention.DefaultSourceName}, true
	}

	p := &preparedRequest{action: action}
	for _, name := range names {
		src, err := s.sourceData.Get(rc, name)
		if err != nil {
			if implicit && errors.Is(err, domain.ErrNotFound) {
				continue
			}
			return nil, fmt.Errorf("loading convention source %q: %w", name, err)
		}
		p.sources = append(p.sources, src)
	}

	if pin, ok := convention.Pin(s.annotations, action); ok {
		src, err := s.sourceData.Get(rc, pin.Source)
		if err != nil {
			return nil, fmt.Errorf("declared convention %s.%s: %w", pin.Source, pin.Method, err)
		}
		if _, found := src.Find(pin.Method); !found {
			return nil, fmt.Errorf("declared convention %s.%s: %w", pin.Source, pin.Method, domain.ErrNotFound)
		}
		p.pinned = convention.Set{src}
	}

	return p, nil
}

func (s *ResolutionService) resolvePrepared(ctx context.Context, p *preparedRequest) *ports.Resolution {
	start := time.Now()

	resolver := convention.NewResolver(s.matcher,
		convention.WithAnnotationReader(s.annotations),
		convention.WithReferences(convention.NewPinnedReferences(s.annotations, p.pinned)),
	)
	result := resolver.Resolve(p.action, p.sources)

	s.metrics.RecordResolution(ctx, string(result.Match), string(result.ErrorTypeScope), time.Since(start))
	s.logger.DebugContext(ctx, "action resolved",
		slog.String("action", p.action.Key()),
		slog.String("match", string(result.Match)),
		slog.Int("outcomes", len(result.Outcomes)),
		slog.String("error_type", result.ErrorType.String()),
		slog.String("error_type_scope", string(result.ErrorTypeScope)),
	)

	names := make([]string, len(p.sources))
	for i, src := range p.sources {
		names[i] = src.Name
	}
	return &ports.Resolution{Action: p.action, Sources: names, Result: result}
}

func requestKey(req ports.ResolutionRequest) string {
	if req.Action != nil {
		return req.Action.Key()
	}
	return req.ActionID
}
