package convention

import (
	"github.com/jsamuelsen11/api-conventions/internal/domain/annotation"
	"github.com/jsamuelsen11/api-conventions/internal/domain/api"
)

// PinnedReferences reads ConventionMethod annotations (inherited through
// overridden actions) and looks the named definition up in a Lookup.
type PinnedReferences struct {
	annotations annotation.Reader
	lookup      Lookup
}

// NewPinnedReferences returns a ReferenceReader backed by reader and lookup.
// A nil reader uses annotation.NewReader().
func NewPinnedReferences(reader annotation.Reader, lookup Lookup) *PinnedReferences {
	if reader == nil {
		reader = annotation.NewReader()
	}
	if lookup == nil {
		lookup = Set(nil)
	}
	return &PinnedReferences{annotations: reader, lookup: lookup}
}

// DeclaredConvention implements ReferenceReader. A pin whose source or method
// cannot be found is reported as absent.
func (p *PinnedReferences) DeclaredConvention(action *api.Action) (*Definition, bool) {
	pin, ok := Pin(p.annotations, action)
	if !ok {
		return nil, false
	}
	src, ok := p.lookup.Source(pin.Source)
	if !ok {
		return nil, false
	}
	return src.Find(pin.Method)
}

// Pin returns the ConventionMethod annotation declared on action, searching
// overridden actions too.
func Pin(reader annotation.Reader, action *api.Action) (annotation.ConventionMethod, bool) {
	return annotation.First[annotation.ConventionMethod](reader.Annotations(action, true))
}

// AppliedSources returns the source names applied to action through
// ConventionType annotations: those on the declaring type (inherited) or, when
// the type has none, those on its module.
func AppliedSources(reader annotation.Reader, action *api.Action) []string {
	if action.DeclaringType == nil {
		return nil
	}
	if names := sourceNames(reader.Annotations(action.DeclaringType, true)); len(names) > 0 {
		return names
	}
	if mod := action.Module(); mod != nil {
		return sourceNames(reader.Annotations(mod, false))
	}
	return nil
}

func sourceNames(anns []annotation.Annotation) []string {
	var names []string
	seen := make(map[string]struct{})
	for _, ct := range annotation.All[annotation.ConventionType](anns) {
		if _, dup := seen[ct.Source]; dup {
			continue
		}
		seen[ct.Source] = struct{}{}
		names = append(names, ct.Source)
	}
	return names
}
