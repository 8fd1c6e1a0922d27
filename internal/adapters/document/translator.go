package document

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/api-conventions/internal/domain"
	"github.com/jsamuelsen11/api-conventions/internal/domain/annotation"
	"github.com/jsamuelsen11/api-conventions/internal/domain/api"
	"github.com/jsamuelsen11/api-conventions/internal/domain/convention"
	"github.com/jsamuelsen11/api-conventions/internal/ports"
)

// fieldErrors collects per-field validation messages keyed by document path.
type fieldErrors map[string]string

func (f fieldErrors) err() error {
	if len(f) == 0 {
		return nil
	}
	return &domain.ValidationError{Fields: f}
}

// ToDomainSource converts a SourceDoc into a convention.Source. Unknown match
// behaviors and malformed status codes are reported as a
// *domain.ValidationError keyed by document path.
func ToDomainSource(doc SourceDoc) (*convention.Source, error) {
	fields := fieldErrors{}
	src := toDomainSource(doc, "source", fields)
	if err := fields.err(); err != nil {
		return nil, err
	}
	return src, nil
}

func toDomainSource(doc SourceDoc, path string, fields fieldErrors) *convention.Source {
	if strings.TrimSpace(doc.Name) == "" {
		fields[path+".name"] = domain.MsgRequired
	}

	defs := make([]*convention.Definition, 0, len(doc.Definitions))
	for i, d := range doc.Definitions {
		defPath := fmt.Sprintf("%s.definitions[%d]", path, i)
		if strings.TrimSpace(d.Name) == "" {
			fields[defPath+".name"] = domain.MsgRequired
		}

		var anns []annotation.Annotation
		for j, r := range d.Responses {
			ann, ok := responseAnnotation(r)
			if !ok {
				fields[fmt.Sprintf("%s.responses[%d].status", defPath, j)] = fmt.Sprintf("invalid: %q", r.Status)
				continue
			}
			anns = append(anns, ann)
		}
		if d.NameMatch != "" {
			b := annotation.NameBehavior(d.NameMatch)
			if !b.IsValid() {
				fields[defPath+".name_match"] = fmt.Sprintf("invalid: %q", d.NameMatch)
			}
			anns = append(anns, annotation.NameMatch{Behavior: b})
		}

		defs = append(defs, &convention.Definition{
			Signature: api.Signature{
				Name:       d.Name,
				Parameters: toDomainParameters(d.Parameters, defPath, fields),
				Returns:    domain.TypeRef(d.Returns),
			},
			Annotations: anns,
		})
	}

	return convention.NewSource(doc.Name, defs...)
}

func responseAnnotation(r ResponseDoc) (annotation.Annotation, bool) {
	status, ok := domain.ParseStatusClass(r.Status)
	if !ok {
		return nil, false
	}
	if status.IsDefault() {
		return annotation.ProducesDefaultResponse{Type: domain.TypeRef(r.Type)}, true
	}
	return annotation.ProducesResponse{StatusCode: int(status), Type: domain.TypeRef(r.Type)}, true
}

// ToDomainParameters converts parameter documents, validating match behaviors.
func ToDomainParameters(docs []ParameterDoc) ([]api.Parameter, error) {
	fields := fieldErrors{}
	params := toDomainParameters(docs, "", fields)
	if err := fields.err(); err != nil {
		return nil, err
	}
	return params, nil
}

func toDomainParameters(docs []ParameterDoc, path string, fields fieldErrors) []api.Parameter {
	if len(docs) == 0 {
		return nil
	}
	prefix := "parameters"
	if path != "" {
		prefix = path + ".parameters"
	}

	params := make([]api.Parameter, len(docs))
	for i, p := range docs {
		pPath := fmt.Sprintf("%s[%d]", prefix, i)
		var anns []annotation.Annotation
		if p.NameMatch != "" {
			b := annotation.NameBehavior(p.NameMatch)
			if !b.IsValid() {
				fields[pPath+".name_match"] = fmt.Sprintf("invalid: %q", p.NameMatch)
			}
			anns = append(anns, annotation.NameMatch{Behavior: b})
		}
		if p.TypeMatch != "" {
			b := annotation.TypeBehavior(p.TypeMatch)
			if !b.IsValid() {
				fields[pPath+".type_match"] = fmt.Sprintf("invalid: %q", p.TypeMatch)
			}
			anns = append(anns, annotation.TypeMatch{Behavior: b})
		}
		params[i] = api.Parameter{
			Name:        p.Name,
			Type:        domain.TypeRef(p.Type),
			Variadic:    p.Variadic,
			Annotations: anns,
		}
	}
	return params
}

// ScopeAnnotations builds the annotations of a type or module: an optional
// error type followed by the applied convention sources in order.
func ScopeAnnotations(errorType string, conventions []string) []annotation.Annotation {
	var anns []annotation.Annotation
	if errorType != "" {
		anns = append(anns, annotation.ErrorType{Type: domain.TypeRef(errorType)})
	}
	for _, c := range conventions {
		anns = append(anns, annotation.ConventionType{Source: c})
	}
	return anns
}

// ActionAnnotations builds the annotations declared by an ActionDoc.
func ActionAnnotations(doc ActionDoc) []annotation.Annotation {
	var anns []annotation.Annotation
	if doc.ErrorType != "" {
		anns = append(anns, annotation.ErrorType{Type: domain.TypeRef(doc.ErrorType)})
	}
	if doc.Convention != nil {
		anns = append(anns, annotation.ConventionMethod{Source: doc.Convention.Source, Method: doc.Convention.Method})
	}
	return anns
}

// ToDomainAction converts an ActionDoc declared on typ. The caller links
// overrides.
func ToDomainAction(doc ActionDoc, typ *api.Type, path string, fields map[string]string) *api.Action {
	if doc.Convention != nil && (doc.Convention.Source == "" || doc.Convention.Method == "") {
		key := "convention"
		if path != "" {
			key = path + "." + key
		}
		fields[key] = "source and method are required"
	}
	return &api.Action{
		ID: doc.ID,
		Signature: api.Signature{
			Name:       doc.Name,
			Parameters: toDomainParameters(doc.Parameters, path, fields),
			Returns:    domain.TypeRef(doc.Returns),
		},
		DeclaringType: typ,
		Annotations:   ActionAnnotations(doc),
	}
}

// ToDomainInlineAction converts an action submitted for ad-hoc resolution,
// building its declaring type and module from the inline scopes. Field
// errors are keyed relative to the action.
func ToDomainInlineAction(doc InlineActionDoc) (*api.Action, error) {
	fields := fieldErrors{}

	typ := &api.Type{
		Name:        doc.Type.Name,
		Annotations: ScopeAnnotations(doc.Type.ErrorType, doc.Type.Conventions),
	}
	if doc.Module != nil {
		typ.Module = &api.Module{
			Name:        doc.Module.Name,
			Annotations: ScopeAnnotations(doc.Module.ErrorType, doc.Module.Conventions),
		}
	}

	action := ToDomainAction(doc.ActionDoc, typ, "", fields)
	if err := fields.err(); err != nil {
		return nil, err
	}
	if err := action.Validate(); err != nil {
		return nil, err
	}
	return action, nil
}

// FromDomainSource converts a convention.Source to its document form.
func FromDomainSource(src *convention.Source) SourceDoc {
	doc := SourceDoc{Name: src.Name, Definitions: make([]DefinitionDoc, len(src.Definitions))}
	for i, d := range src.Definitions {
		def := DefinitionDoc{
			Name:       d.Signature.Name,
			Parameters: FromDomainParameters(d.Signature.Parameters),
			Returns:    d.Signature.Returns.String(),
			Responses:  FromDomainOutcomes(annotation.Outcomes(d.Annotations)),
		}
		if nm, ok := annotation.First[annotation.NameMatch](d.Annotations); ok {
			def.NameMatch = string(nm.Behavior)
		}
		doc.Definitions[i] = def
	}
	return doc
}

// FromDomainParameters converts parameters to their document form.
func FromDomainParameters(params []api.Parameter) []ParameterDoc {
	if len(params) == 0 {
		return nil
	}
	docs := make([]ParameterDoc, len(params))
	for i, p := range params {
		doc := ParameterDoc{Name: p.Name, Type: p.Type.String(), Variadic: p.Variadic}
		if nm, ok := annotation.First[annotation.NameMatch](p.Annotations); ok {
			doc.NameMatch = string(nm.Behavior)
		}
		if tm, ok := annotation.First[annotation.TypeMatch](p.Annotations); ok {
			doc.TypeMatch = string(tm.Behavior)
		}
		docs[i] = doc
	}
	return docs
}

// FromDomainOutcomes converts outcomes to response documents, keeping order.
// The result is never nil.
func FromDomainOutcomes(outcomes []domain.Outcome) []ResponseDoc {
	docs := make([]ResponseDoc, len(outcomes))
	for i, o := range outcomes {
		docs[i] = ResponseDoc{Status: o.Status.String(), Type: o.Type.String()}
	}
	return docs
}

// FromDomainAction summarizes a catalogued action.
func FromDomainAction(a *api.Action) ActionSummaryDoc {
	doc := ActionSummaryDoc{ID: a.Key(), Signature: a.Signature.String()}
	if a.DeclaringType != nil {
		doc.Type = a.DeclaringType.Name
	}
	if mod := a.Module(); mod != nil {
		doc.Module = mod.Name
	}
	return doc
}

// FromDomainResolution converts a resolution to its document form.
func FromDomainResolution(res *ports.Resolution) ResolutionDoc {
	sources := res.Sources
	if sources == nil {
		sources = []string{}
	}
	doc := ResolutionDoc{
		Action:         res.Action.Key(),
		Sources:        sources,
		Responses:      FromDomainOutcomes(res.Result.Outcomes),
		ErrorType:      res.Result.ErrorType.String(),
		ErrorTypeScope: string(res.Result.ErrorTypeScope),
		Match:          string(res.Result.Match),
	}
	if def := res.Result.Convention; def != nil {
		doc.Convention = &ConventionRefDoc{Source: def.Source, Method: def.Name()}
	}
	return doc
}
