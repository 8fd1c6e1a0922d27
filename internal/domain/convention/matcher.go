package convention

import "github.com/jsamuelsen11/api-conventions/internal/domain/api"

// Matcher decides whether an action structurally matches a candidate
// definition. Implementations must be pure.
type Matcher interface {
	Matches(action *api.Action, candidate *Definition) bool
}

// MatcherFunc adapts a function to the Matcher interface.
type MatcherFunc func(action *api.Action, candidate *Definition) bool

// Matches calls f.
func (f MatcherFunc) Matches(action *api.Action, candidate *Definition) bool {
	return f(action, candidate)
}

// ReferenceReader returns the convention definition an action explicitly
// declares, if any.
type ReferenceReader interface {
	DeclaredConvention(action *api.Action) (*Definition, bool)
}

// ReferenceFunc adapts a function to the ReferenceReader interface.
type ReferenceFunc func(action *api.Action) (*Definition, bool)

// DeclaredConvention calls f.
func (f ReferenceFunc) DeclaredConvention(action *api.Action) (*Definition, bool) {
	return f(action)
}

type noReferences struct{}

func (noReferences) DeclaredConvention(*api.Action) (*Definition, bool) { return nil, false }
