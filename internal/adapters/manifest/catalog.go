// Package manifest loads convention sources and API catalogs from YAML or
// JSON manifest files. The resulting Catalog is immutable and serves both
// ports.SourceProvider and ports.ActionRepository.
package manifest

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/jsamuelsen11/api-conventions/internal/adapters/document"
	"github.com/jsamuelsen11/api-conventions/internal/domain"
	"github.com/jsamuelsen11/api-conventions/internal/domain/api"
	"github.com/jsamuelsen11/api-conventions/internal/domain/convention"
	"github.com/jsamuelsen11/api-conventions/internal/ports"
)

// Compile-time checks that Catalog implements the outbound ports.
var (
	_ ports.SourceProvider   = (*Catalog)(nil)
	_ ports.ActionRepository = (*Catalog)(nil)
)

// Option configures a Catalog.
type Option func(*options)

type options struct {
	includeDefaults bool
}

// WithDefaults controls whether the built-in "default" source is added when
// no manifest defines a source of that name. Enabled by default.
func WithDefaults(include bool) Option {
	return func(o *options) {
		o.includeDefaults = include
	}
}

// Catalog holds the sources and actions declared by a set of manifests.
type Catalog struct {
	sources convention.Set
	actions map[string]*api.Action
	ids     []string
}

// New builds a Catalog from already-decoded manifest documents. Documents are
// merged in order. A source name or action ID declared twice is a
// domain.ErrConflict; unknown or cyclic base and override references are a
// *domain.ValidationError.
func New(docs []document.ManifestDoc, opts ...Option) (*Catalog, error) {
	o := &options{includeDefaults: true}
	for _, opt := range opts {
		opt(o)
	}

	c := &Catalog{actions: make(map[string]*api.Action)}
	if err := c.addSources(docs); err != nil {
		return nil, err
	}
	if o.includeDefaults {
		if _, ok := c.sources.Source(convention.DefaultSourceName); !ok {
			c.sources = append(c.sources, convention.DefaultSource())
		}
	}
	if err := c.addModules(docs); err != nil {
		return nil, err
	}

	c.ids = make([]string, 0, len(c.actions))
	for id := range c.actions {
		c.ids = append(c.ids, id)
	}
	slices.Sort(c.ids)
	return c, nil
}

func (c *Catalog) addSources(docs []document.ManifestDoc) error {
	for _, doc := range docs {
		for _, sd := range doc.Sources {
			if _, dup := c.sources.Source(sd.Name); dup {
				return fmt.Errorf("convention source %q declared twice: %w", sd.Name, domain.ErrConflict)
			}
			src, err := document.ToDomainSource(sd)
			if err != nil {
				return fmt.Errorf("convention source %q: %w", sd.Name, err)
			}
			c.sources = append(c.sources, src)
		}
	}
	return nil
}

// typeEntry pairs a declared type with its document so bases can be linked
// after every type is known.
type typeEntry struct {
	typ *api.Type
	doc document.TypeDoc
}

// actionEntry pairs a declared action with its override reference.
type actionEntry struct {
	action    *api.Action
	overrides string
}

func (c *Catalog) addModules(docs []document.ManifestDoc) error {
	fields := make(map[string]string)
	types := make(map[string]*typeEntry)
	var typeKeys []string
	var entries []*actionEntry

	for _, doc := range docs {
		for _, md := range doc.Modules {
			if strings.TrimSpace(md.Name) == "" {
				fields["modules.name"] = domain.MsgRequired
				continue
			}
			mod := &api.Module{
				Name:        md.Name,
				Annotations: document.ScopeAnnotations(md.ErrorType, md.Conventions),
			}

			for _, td := range md.Types {
				key := md.Name + "." + td.Name
				if strings.TrimSpace(td.Name) == "" {
					fields["modules["+md.Name+"].types.name"] = domain.MsgRequired
					continue
				}
				if _, dup := types[key]; dup {
					return fmt.Errorf("type %q declared twice: %w", key, domain.ErrConflict)
				}
				typ := &api.Type{
					Name:        td.Name,
					Module:      mod,
					Annotations: document.ScopeAnnotations(td.ErrorType, td.Conventions),
				}
				types[key] = &typeEntry{typ: typ, doc: td}
				typeKeys = append(typeKeys, key)

				for _, ad := range td.Actions {
					if ad.ID == "" {
						ad.ID = key + "." + ad.Name
					}
					if _, dup := c.actions[ad.ID]; dup {
						return fmt.Errorf("action %q declared twice: %w", ad.ID, domain.ErrConflict)
					}
					path := "actions[" + ad.ID + "]"
					action := document.ToDomainAction(ad, typ, path, fields)
					if err := action.Validate(); err != nil {
						fields[path] = err.Error()
					}
					c.actions[ad.ID] = action
					entries = append(entries, &actionEntry{action: action, overrides: ad.Overrides})
				}
			}
		}
	}

	linkTypes(types, typeKeys, fields)
	c.linkOverrides(entries, fields)

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

func linkTypes(types map[string]*typeEntry, keys []string, fields map[string]string) {
	for _, key := range keys {
		e := types[key]
		if e.doc.Base == "" {
			continue
		}
		ref := e.doc.Base
		if !strings.Contains(ref, ".") {
			ref = e.typ.Module.Name + "." + ref
		}
		base, ok := types[ref]
		if !ok {
			fields["types["+key+"].base"] = unknownRef(e.doc.Base)
			continue
		}
		e.typ.Base = base.typ
	}

	for _, key := range keys {
		if hasTypeCycle(types[key].typ) {
			fields["types["+key+"].base"] = domain.MsgCycle
		}
	}
}

func hasTypeCycle(t *api.Type) bool {
	seen := map[*api.Type]struct{}{t: {}}
	for cur := t.Base; cur != nil; cur = cur.Base {
		if _, ok := seen[cur]; ok {
			return true
		}
		seen[cur] = struct{}{}
	}
	return false
}

func (c *Catalog) linkOverrides(entries []*actionEntry, fields map[string]string) {
	for _, e := range entries {
		if e.overrides == "" {
			continue
		}
		base, ok := c.actions[e.overrides]
		if !ok {
			fields["actions["+e.action.ID+"].overrides"] = unknownRef(e.overrides)
			continue
		}
		e.action.Base = base
	}

	for _, e := range entries {
		if hasOverrideCycle(e.action) {
			fields["actions["+e.action.ID+"].overrides"] = domain.MsgCycle
		}
	}
}

func hasOverrideCycle(a *api.Action) bool {
	seen := map[*api.Action]struct{}{a: {}}
	for cur := a.Base; cur != nil; cur = cur.Base {
		if _, ok := seen[cur]; ok {
			return true
		}
		seen[cur] = struct{}{}
	}
	return false
}

// unknownRef formats the validation message for a dangling reference.
func unknownRef(ref string) string {
	return fmt.Sprintf("%s: %q", domain.MsgUnknown, ref)
}

// Name identifies the catalog in logs and health reports.
func (c *Catalog) Name() string {
	return "manifest"
}

// GetSource implements ports.SourceProvider.
func (c *Catalog) GetSource(_ context.Context, name string) (*convention.Source, error) {
	src, ok := c.sources.Source(name)
	if !ok {
		return nil, fmt.Errorf("convention source %q: %w", name, domain.ErrNotFound)
	}
	return src, nil
}

// ListSources implements ports.SourceProvider. Sources keep manifest order;
// the built-in default source, when added, comes last.
func (c *Catalog) ListSources(_ context.Context) ([]*convention.Source, error) {
	return slices.Clone([]*convention.Source(c.sources)), nil
}

// GetAction implements ports.ActionRepository.
func (c *Catalog) GetAction(_ context.Context, id string) (*api.Action, error) {
	action, ok := c.actions[id]
	if !ok {
		return nil, fmt.Errorf("action %q: %w", id, domain.ErrNotFound)
	}
	return action, nil
}

// ListActions implements ports.ActionRepository. Actions are sorted by ID.
func (c *Catalog) ListActions(_ context.Context) ([]*api.Action, error) {
	out := make([]*api.Action, len(c.ids))
	for i, id := range c.ids {
		out[i] = c.actions[id]
	}
	return out, nil
}
