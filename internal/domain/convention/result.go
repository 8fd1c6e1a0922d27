package convention

import "github.com/jsamuelsen11/api-conventions/internal/domain"

// Match records how the winning definition was chosen.
type Match string

// Match kinds.
const (
	MatchDeclared Match = "declared"
	MatchMatched  Match = "matched"
	MatchNone     Match = "none"
)

// Scope records which level supplied the error type.
type Scope string

// Error type scopes, in lookup order.
const (
	ScopeAction  Scope = "action"
	ScopeType    Scope = "type"
	ScopeModule  Scope = "module"
	ScopeDefault Scope = "default"
)

// Result is the combined outcome of resolving one action. Outcomes is never
// nil and ErrorType is never empty.
type Result struct {
	Outcomes  []domain.Outcome
	ErrorType domain.TypeRef

	// Convention is the winning definition, nil when Match is MatchNone.
	Convention     *Definition
	Match          Match
	ErrorTypeScope Scope
}

// HasOutcomes reports whether any outcome was resolved.
func (r Result) HasOutcomes() bool {
	return len(r.Outcomes) > 0
}
