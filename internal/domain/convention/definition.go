package convention

import (
	"github.com/jsamuelsen11/api-conventions/internal/domain/annotation"
	"github.com/jsamuelsen11/api-conventions/internal/domain/api"
)

// Definition is one candidate convention method. Its annotations carry the
// outcomes an action matched to it is expected to produce.
type Definition struct {
	// Source is the name of the source the definition belongs to.
	Source      string
	Signature   api.Signature
	Annotations []annotation.Annotation
}

// Attached implements annotation.Target.
func (d *Definition) Attached() []annotation.Annotation { return d.Annotations }

// Inherited implements annotation.Target. Definitions do not inherit.
func (d *Definition) Inherited() annotation.Target { return nil }

// Name returns the definition's method name.
func (d *Definition) Name() string {
	return d.Signature.Name
}

// Reference returns the source/method pair identifying d.
func (d *Definition) Reference() annotation.ConventionMethod {
	return annotation.ConventionMethod{Source: d.Source, Method: d.Signature.Name}
}

// Source is a named, ordered collection of convention definitions.
type Source struct {
	Name        string
	Definitions []*Definition
}

// NewSource builds a Source and stamps each definition with its name.
func NewSource(name string, defs ...*Definition) *Source {
	for _, d := range defs {
		d.Source = name
	}
	return &Source{Name: name, Definitions: defs}
}

// Find returns the first definition named method.
func (s *Source) Find(method string) (*Definition, bool) {
	for _, d := range s.Definitions {
		if d.Signature.Name == method {
			return d, true
		}
	}
	return nil, false
}

// Lookup finds sources by name.
type Lookup interface {
	Source(name string) (*Source, bool)
}

// Set is an ordered list of sources that also serves as a Lookup.
type Set []*Source

// Source implements Lookup. The first source with the name wins.
func (s Set) Source(name string) (*Source, bool) {
	for _, src := range s {
		if src != nil && src.Name == name {
			return src, true
		}
	}
	return nil, false
}
