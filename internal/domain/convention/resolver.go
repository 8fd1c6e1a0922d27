package convention

import (
	"github.com/jsamuelsen11/api-conventions/internal/domain"
	"github.com/jsamuelsen11/api-conventions/internal/domain/annotation"
	"github.com/jsamuelsen11/api-conventions/internal/domain/api"
)

// Option configures a Resolver.
type Option func(*Resolver)

// WithAnnotationReader sets the annotation lookup. Defaults to
// annotation.NewReader().
func WithAnnotationReader(reader annotation.Reader) Option {
	return func(r *Resolver) {
		if reader != nil {
			r.annotations = reader
		}
	}
}

// WithReferences sets how declared convention references are found. Without
// it, no action is treated as having a declared reference.
func WithReferences(refs ReferenceReader) Option {
	return func(r *Resolver) {
		if refs != nil {
			r.references = refs
		}
	}
}

// Resolver resolves response outcomes and error types for actions.
type Resolver struct {
	matcher     Matcher
	annotations annotation.Reader
	references  ReferenceReader
}

// NewResolver creates a Resolver that uses matcher to test candidates.
func NewResolver(matcher Matcher, opts ...Option) *Resolver {
	r := &Resolver{
		matcher:     matcher,
		annotations: annotation.NewReader(),
		references:  noReferences{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve runs both halves of resolution for action against sources.
// action must not be nil.
func (r *Resolver) Resolve(action *api.Action, sources []*Source) Result {
	def, match := r.SelectConvention(action, sources)
	errType, scope := r.ResolveErrorTypeScope(action)

	return Result{
		Outcomes:       r.outcomesOf(def),
		ErrorType:      errType,
		Convention:     def,
		Match:          match,
		ErrorTypeScope: scope,
	}
}

// ResolveOutcomes returns the outcomes declared by the definition that wins
// for action, in discovery order. The result is empty, never nil, when no
// definition wins.
func (r *Resolver) ResolveOutcomes(action *api.Action, sources []*Source) []domain.Outcome {
	def, _ := r.SelectConvention(action, sources)
	return r.outcomesOf(def)
}

// SelectConvention picks the definition for action. A declared reference wins
// without consulting the matcher. Otherwise sources are scanned in order, and
// candidates within each source in order, and the first candidate the matcher
// accepts wins.
func (r *Resolver) SelectConvention(action *api.Action, sources []*Source) (*Definition, Match) {
	if def, ok := r.references.DeclaredConvention(action); ok && def != nil {
		return def, MatchDeclared
	}

	for _, src := range sources {
		if src == nil {
			continue
		}
		for _, candidate := range src.Definitions {
			if r.matcher.Matches(action, candidate) {
				return candidate, MatchMatched
			}
		}
	}
	return nil, MatchNone
}

// ResolveErrorType returns the error type for action.
func (r *Resolver) ResolveErrorType(action *api.Action) domain.TypeRef {
	t, _ := r.ResolveErrorTypeScope(action)
	return t
}

// ResolveErrorTypeScope returns the error type for action and the scope that
// supplied it. Scopes are tried in order: the action (inherited), the
// declaring type (inherited), the module (direct only), then the default.
func (r *Resolver) ResolveErrorTypeScope(action *api.Action) (domain.TypeRef, Scope) {
	lookups := []struct {
		scope  Scope
		lookup func(*api.Action) (domain.TypeRef, bool)
	}{
		{ScopeAction, r.actionErrorType},
		{ScopeType, r.typeErrorType},
		{ScopeModule, r.moduleErrorType},
	}

	for _, l := range lookups {
		if t, ok := l.lookup(action); ok {
			return t, l.scope
		}
	}
	return domain.ProblemDetails, ScopeDefault
}

func (r *Resolver) actionErrorType(action *api.Action) (domain.TypeRef, bool) {
	return errorTypeIn(r.annotations.Annotations(action, true))
}

func (r *Resolver) typeErrorType(action *api.Action) (domain.TypeRef, bool) {
	if action.DeclaringType == nil {
		return "", false
	}
	return errorTypeIn(r.annotations.Annotations(action.DeclaringType, true))
}

func (r *Resolver) moduleErrorType(action *api.Action) (domain.TypeRef, bool) {
	mod := action.Module()
	if mod == nil {
		return "", false
	}
	return errorTypeIn(r.annotations.Annotations(mod, false))
}

func errorTypeIn(anns []annotation.Annotation) (domain.TypeRef, bool) {
	et, ok := annotation.First[annotation.ErrorType](anns)
	if !ok || et.Type.IsZero() {
		return "", false
	}
	return et.Type, true
}

func (r *Resolver) outcomesOf(def *Definition) []domain.Outcome {
	if def == nil {
		return []domain.Outcome{}
	}
	return annotation.Outcomes(r.annotations.Annotations(def, false))
}
