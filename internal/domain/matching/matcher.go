// Package matching provides the default structural Matcher used to pair API
// actions with convention definitions.
//
// A definition matches an action when its name matches under the definition's
// NameMatch behavior (exact by default) and its parameters match the action's
// parameters position by position. Each convention parameter may carry its own
// NameMatch (exact by default) and TypeMatch (assignable by default). A
// variadic convention parameter matches every remaining action parameter.
// Return types are not compared.
package matching

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jsamuelsen11/api-conventions/internal/domain/annotation"
	"github.com/jsamuelsen11/api-conventions/internal/domain/api"
	"github.com/jsamuelsen11/api-conventions/internal/domain/convention"
)

// Compile-time check that Matcher implements convention.Matcher.
var _ convention.Matcher = (*Matcher)(nil)

// Matcher is the default structural convention matcher.
type Matcher struct {
	annotations annotation.Reader
}

// New returns a Matcher that reads definition hints through reader.
// A nil reader uses annotation.NewReader().
func New(reader annotation.Reader) *Matcher {
	if reader == nil {
		reader = annotation.NewReader()
	}
	return &Matcher{annotations: reader}
}

// Matches implements convention.Matcher.
func (m *Matcher) Matches(action *api.Action, candidate *convention.Definition) bool {
	behavior := annotation.NameExact
	if nm, ok := annotation.First[annotation.NameMatch](m.annotations.Annotations(candidate, false)); ok {
		behavior = nm.Behavior
	}
	if !NameMatches(action.Name(), candidate.Name(), behavior) {
		return false
	}
	return parametersMatch(action.Signature.Parameters, candidate.Signature.Parameters)
}

func parametersMatch(actual, conv []api.Parameter) bool {
	for i, cp := range conv {
		if cp.Variadic {
			return true
		}
		if i >= len(actual) {
			return false
		}
		if !parameterMatches(actual[i], cp) {
			return false
		}
	}
	return len(actual) == len(conv)
}

func parameterMatches(actual, conv api.Parameter) bool {
	nameBehavior := annotation.NameExact
	if nm, ok := annotation.First[annotation.NameMatch](conv.Annotations); ok {
		nameBehavior = nm.Behavior
	}
	typeBehavior := annotation.TypeAssignable
	if tm, ok := annotation.First[annotation.TypeMatch](conv.Annotations); ok {
		typeBehavior = tm.Behavior
	}
	return NameMatches(actual.Name, conv.Name, nameBehavior) &&
		TypeMatches(actual, conv, typeBehavior)
}

// TypeMatches compares a parameter type to a convention parameter type.
// Assignable accepts equal type names or a universal convention type.
func TypeMatches(actual, conv api.Parameter, behavior annotation.TypeBehavior) bool {
	switch behavior {
	case annotation.TypeAny:
		return true
	case annotation.TypeAssignable:
		return conv.Type.IsAny() || conv.Type == actual.Type
	default:
		return false
	}
}

// NameMatches compares name to the convention name under behavior.
//
// Prefix requires the character after the prefix, if any, not to be lower
// case, so Get matches GetWidget, Get2 and Get_Item but not Getaway. Suffix is
// compared rune by rune, case-insensitively, and requires a camel-case
// boundary so that id matches productId but not paid.
func NameMatches(name, conventionName string, behavior annotation.NameBehavior) bool {
	switch behavior {
	case annotation.NameAny:
		return true
	case annotation.NameExact:
		return name == conventionName
	case annotation.NamePrefix:
		return prefixMatches(name, conventionName)
	case annotation.NameSuffix:
		return suffixMatches(name, conventionName)
	default:
		return false
	}
}

func prefixMatches(name, prefix string) bool {
	if !strings.HasPrefix(name, prefix) {
		return false
	}
	if len(name) == len(prefix) {
		return true
	}
	next, _ := utf8.DecodeRuneInString(name[len(prefix):])
	return !unicode.IsLower(next)
}

func suffixMatches(name, suffix string) bool {
	nr, sr := []rune(name), []rune(suffix)
	if len(nr) < len(sr) {
		return false
	}
	boundary := len(nr) - len(sr)
	if !strings.EqualFold(string(nr[boundary:]), suffix) {
		return false
	}
	if boundary == 0 {
		return true
	}
	return unicode.IsLower(nr[boundary-1]) && unicode.IsUpper(nr[boundary])
}
