// Package annotation models the metadata attached to modules, types, actions
// and convention definitions, and the lookup used to read it back with or
// without inheritance.
package annotation

import "github.com/jsamuelsen11/api-conventions/internal/domain"

// Kind identifies the annotation variant.
type Kind string

// Annotation kinds.
const (
	KindProducesResponse        Kind = "produces_response"
	KindProducesDefaultResponse Kind = "produces_default_response"
	KindErrorType               Kind = "error_type"
	KindConventionMethod        Kind = "convention_method"
	KindConventionType          Kind = "convention_type"
	KindNameMatch               Kind = "name_match"
	KindTypeMatch               Kind = "type_match"
)

// Annotation is a piece of metadata attached to an entity. Implementations are
// immutable values.
type Annotation interface {
	Kind() Kind
}

// OutcomeProvider is implemented by annotations that declare a response
// outcome.
type OutcomeProvider interface {
	Annotation
	Outcome() domain.Outcome
}

// ProducesResponse declares that an action can respond with StatusCode and an
// optional payload Type.
type ProducesResponse struct {
	StatusCode int
	Type       domain.TypeRef
}

func (ProducesResponse) Kind() Kind { return KindProducesResponse }

// Outcome returns the declared outcome.
func (p ProducesResponse) Outcome() domain.Outcome {
	return domain.Outcome{Status: domain.StatusClass(p.StatusCode), Type: p.Type}
}

// ProducesDefaultResponse declares the catch-all "default" response class.
type ProducesDefaultResponse struct {
	Type domain.TypeRef
}

func (ProducesDefaultResponse) Kind() Kind { return KindProducesDefaultResponse }

// Outcome returns the declared outcome.
func (p ProducesDefaultResponse) Outcome() domain.Outcome {
	return domain.Outcome{Status: domain.StatusDefault, Type: p.Type}
}

// ErrorType declares the type used for error responses.
type ErrorType struct {
	Type domain.TypeRef
}

func (ErrorType) Kind() Kind { return KindErrorType }

// ConventionMethod pins an action to one named convention definition.
type ConventionMethod struct {
	Source string
	Method string
}

func (ConventionMethod) Kind() Kind { return KindConventionMethod }

// ConventionType applies a convention source to every action of the
// annotated type or module.
type ConventionType struct {
	Source string
}

func (ConventionType) Kind() Kind { return KindConventionType }

// NameBehavior controls how a convention name is compared to an action or
// parameter name.
type NameBehavior string

// Name match behaviors.
const (
	NameExact  NameBehavior = "exact"
	NamePrefix NameBehavior = "prefix"
	NameSuffix NameBehavior = "suffix"
	NameAny    NameBehavior = "any"
)

// IsValid reports whether b is a known behavior.
func (b NameBehavior) IsValid() bool {
	switch b {
	case NameExact, NamePrefix, NameSuffix, NameAny:
		return true
	default:
		return false
	}
}

// NameMatch sets the name comparison used for a convention definition or one
// of its parameters.
type NameMatch struct {
	Behavior NameBehavior
}

func (NameMatch) Kind() Kind { return KindNameMatch }

// TypeBehavior controls how a convention parameter type is compared.
type TypeBehavior string

// Type match behaviors.
const (
	TypeAssignable TypeBehavior = "assignable"
	TypeAny        TypeBehavior = "any"
)

// IsValid reports whether b is a known behavior.
func (b TypeBehavior) IsValid() bool {
	return b == TypeAssignable || b == TypeAny
}

// TypeMatch sets the type comparison used for a convention parameter.
type TypeMatch struct {
	Behavior TypeBehavior
}

func (TypeMatch) Kind() Kind { return KindTypeMatch }

// First returns the first annotation of type T in anns.
func First[T Annotation](anns []Annotation) (T, bool) {
	for _, a := range anns {
		if v, ok := a.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// All returns every annotation of type T in anns, in order.
func All[T Annotation](anns []Annotation) []T {
	var out []T
	for _, a := range anns {
		if v, ok := a.(T); ok {
			out = append(out, v)
		}
	}
	return out
}

// Outcomes returns the outcomes declared by anns in discovery order.
// Duplicates are kept. The result is never nil.
func Outcomes(anns []Annotation) []domain.Outcome {
	out := make([]domain.Outcome, 0, len(anns))
	for _, a := range anns {
		if p, ok := a.(OutcomeProvider); ok {
			out = append(out, p.Outcome())
		}
	}
	return out
}
