// Package api models the API surface being described: modules containing
// types, types declaring actions, and the signatures of those actions.
//
// All values are built once (from a manifest or a request body) and treated as
// read-only afterwards. Resolution never mutates them.
package api

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/api-conventions/internal/domain"
	"github.com/jsamuelsen11/api-conventions/internal/domain/annotation"
)

// Module is the unit that contains types, such as an assembly or package.
type Module struct {
	Name        string
	Annotations []annotation.Annotation
}

// Attached implements annotation.Target.
func (m *Module) Attached() []annotation.Annotation { return m.Annotations }

// Inherited implements annotation.Target. Modules do not inherit.
func (m *Module) Inherited() annotation.Target { return nil }

// Type is a named container of actions, such as a controller.
type Type struct {
	Name        string
	Module      *Module
	Base        *Type
	Annotations []annotation.Annotation
}

// Attached implements annotation.Target.
func (t *Type) Attached() []annotation.Annotation { return t.Annotations }

// Inherited implements annotation.Target.
func (t *Type) Inherited() annotation.Target {
	if t.Base == nil {
		return nil
	}
	return t.Base
}

// Parameter is one formal parameter of a signature.
type Parameter struct {
	Name        string
	Type        domain.TypeRef
	Variadic    bool
	Annotations []annotation.Annotation
}

// Signature is the structural shape of an action or convention definition.
type Signature struct {
	Name       string
	Parameters []Parameter
	Returns    domain.TypeRef
}

// String renders the signature as Name(param type, ...) returns.
func (s Signature) String() string {
	var b strings.Builder
	b.WriteString(s.Name)
	b.WriteByte('(')
	for i, p := range s.Parameters {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.Name)
		if !p.Type.IsZero() {
			b.WriteByte(' ')
			if p.Variadic {
				b.WriteString("...")
			}
			b.WriteString(p.Type.String())
		}
	}
	b.WriteByte(')')
	if !s.Returns.IsZero() {
		b.WriteByte(' ')
		b.WriteString(s.Returns.String())
	}
	return b.String()
}

// Action is one API operation.
type Action struct {
	// ID uniquely identifies the action in a catalog. Empty for ad-hoc actions.
	ID            string
	Signature     Signature
	DeclaringType *Type
	// Base is the action this one overrides, if any.
	Base        *Action
	Annotations []annotation.Annotation
}

// Attached implements annotation.Target.
func (a *Action) Attached() []annotation.Annotation { return a.Annotations }

// Inherited implements annotation.Target.
func (a *Action) Inherited() annotation.Target {
	if a.Base == nil {
		return nil
	}
	return a.Base
}

// Name returns the action's method name.
func (a *Action) Name() string {
	return a.Signature.Name
}

// Key returns ID, or TypeName.ActionName when the action has no ID.
func (a *Action) Key() string {
	if a.ID != "" {
		return a.ID
	}
	if a.DeclaringType == nil {
		return a.Signature.Name
	}
	return a.DeclaringType.Name + "." + a.Signature.Name
}

// Module returns the module of the declaring type, or nil.
func (a *Action) Module() *Module {
	if a.DeclaringType == nil {
		return nil
	}
	return a.DeclaringType.Module
}

// Validate checks the structural rules for an Action.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (a *Action) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(a.Signature.Name) == "" {
		fields["name"] = domain.MsgRequired
	}
	if a.DeclaringType == nil || strings.TrimSpace(a.DeclaringType.Name) == "" {
		fields["declaring_type"] = domain.MsgRequired
	}
	for i, p := range a.Signature.Parameters {
		if strings.TrimSpace(p.Name) == "" {
			fields[fmt.Sprintf("parameters[%d].name", i)] = domain.MsgRequired
		}
		if p.Variadic && i != len(a.Signature.Parameters)-1 {
			fields[fmt.Sprintf("parameters[%d].variadic", i)] = "only the last parameter may be variadic"
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
