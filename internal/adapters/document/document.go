// Package document defines the serialized forms of convention sources, the
// API surface and resolution results. The same documents are read from
// manifest files (koanf), exchanged with the convention registry (JSON),
// served by the HTTP API and printed by the CLI (JSON or YAML), so each type
// carries koanf, json and yaml tags.
package document

// ResponseDoc declares one outcome. Status is an HTTP status code or
// "default".
type ResponseDoc struct {
	Status string `koanf:"status" json:"status" yaml:"status"`
	Type   string `koanf:"type"   json:"type,omitempty" yaml:"type,omitempty"`
}

// ParameterDoc is one parameter of an action or convention definition.
// NameMatch and TypeMatch are only meaningful on convention parameters.
type ParameterDoc struct {
	Name      string `koanf:"name"       json:"name" yaml:"name"`
	Type      string `koanf:"type"       json:"type,omitempty" yaml:"type,omitempty"`
	Variadic  bool   `koanf:"variadic"   json:"variadic,omitempty" yaml:"variadic,omitempty"`
	NameMatch string `koanf:"name_match" json:"name_match,omitempty" yaml:"name_match,omitempty"`
	TypeMatch string `koanf:"type_match" json:"type_match,omitempty" yaml:"type_match,omitempty"`
}

// DefinitionDoc is one convention definition.
type DefinitionDoc struct {
	Name       string         `koanf:"name"       json:"name" yaml:"name"`
	NameMatch  string         `koanf:"name_match" json:"name_match,omitempty" yaml:"name_match,omitempty"`
	Parameters []ParameterDoc `koanf:"parameters" json:"parameters,omitempty" yaml:"parameters,omitempty"`
	Returns    string         `koanf:"returns"    json:"returns,omitempty" yaml:"returns,omitempty"`
	Responses  []ResponseDoc  `koanf:"responses"  json:"responses,omitempty" yaml:"responses,omitempty"`
}

// SourceDoc is a named list of convention definitions.
type SourceDoc struct {
	Name        string          `koanf:"name"        json:"name" yaml:"name"`
	Definitions []DefinitionDoc `koanf:"definitions" json:"definitions" yaml:"definitions"`
}

// ConventionRefDoc pins an action to one convention definition.
type ConventionRefDoc struct {
	Source string `koanf:"source" json:"source" yaml:"source"`
	Method string `koanf:"method" json:"method" yaml:"method"`
}

// ActionDoc is one action of a type.
type ActionDoc struct {
	ID         string            `koanf:"id"         json:"id,omitempty" yaml:"id,omitempty"`
	Name       string            `koanf:"name"       json:"name" yaml:"name"`
	Parameters []ParameterDoc    `koanf:"parameters" json:"parameters,omitempty" yaml:"parameters,omitempty"`
	Returns    string            `koanf:"returns"    json:"returns,omitempty" yaml:"returns,omitempty"`
	ErrorType  string            `koanf:"error_type" json:"error_type,omitempty" yaml:"error_type,omitempty"`
	Convention *ConventionRefDoc `koanf:"convention" json:"convention,omitempty" yaml:"convention,omitempty"`
	// Overrides is the ID of the action this one overrides.
	Overrides string `koanf:"overrides" json:"overrides,omitempty" yaml:"overrides,omitempty"`
}

// TypeDoc is a type declaring actions. Base names another type, either
// "Module.Type" or a type of the same module.
type TypeDoc struct {
	Name        string      `koanf:"name"        json:"name" yaml:"name"`
	Base        string      `koanf:"base"        json:"base,omitempty" yaml:"base,omitempty"`
	ErrorType   string      `koanf:"error_type"  json:"error_type,omitempty" yaml:"error_type,omitempty"`
	Conventions []string    `koanf:"conventions" json:"conventions,omitempty" yaml:"conventions,omitempty"`
	Actions     []ActionDoc `koanf:"actions"     json:"actions,omitempty" yaml:"actions,omitempty"`
}

// ModuleDoc is a module containing types.
type ModuleDoc struct {
	Name        string    `koanf:"name"        json:"name" yaml:"name"`
	ErrorType   string    `koanf:"error_type"  json:"error_type,omitempty" yaml:"error_type,omitempty"`
	Conventions []string  `koanf:"conventions" json:"conventions,omitempty" yaml:"conventions,omitempty"`
	Types       []TypeDoc `koanf:"types"       json:"types,omitempty" yaml:"types,omitempty"`
}

// ManifestDoc is the root of a manifest file.
type ManifestDoc struct {
	Sources []SourceDoc `koanf:"sources" json:"sources,omitempty" yaml:"sources,omitempty"`
	Modules []ModuleDoc `koanf:"modules" json:"modules,omitempty" yaml:"modules,omitempty"`
}

// ScopeDoc describes the declaring type or module of an inline action.
type ScopeDoc struct {
	Name        string   `json:"name" yaml:"name"`
	ErrorType   string   `json:"error_type,omitempty" yaml:"error_type,omitempty"`
	Conventions []string `json:"conventions,omitempty" yaml:"conventions,omitempty"`
}

// InlineActionDoc is an action submitted for resolution without a catalog.
type InlineActionDoc struct {
	ActionDoc `yaml:",inline"`
	Type      ScopeDoc  `json:"type" yaml:"type"`
	Module    *ScopeDoc `json:"module,omitempty" yaml:"module,omitempty"`
}

// ActionSummaryDoc lists a catalogued action.
type ActionSummaryDoc struct {
	ID        string `json:"id" yaml:"id"`
	Module    string `json:"module,omitempty" yaml:"module,omitempty"`
	Type      string `json:"type" yaml:"type"`
	Signature string `json:"signature" yaml:"signature"`
}

// ResolutionDoc is the serialized result of resolving one action.
type ResolutionDoc struct {
	Action         string            `json:"action" yaml:"action"`
	Sources        []string          `json:"sources" yaml:"sources"`
	Responses      []ResponseDoc     `json:"responses" yaml:"responses"`
	ErrorType      string            `json:"error_type" yaml:"error_type"`
	ErrorTypeScope string            `json:"error_type_scope" yaml:"error_type_scope"`
	Match          string            `json:"match" yaml:"match"`
	Convention     *ConventionRefDoc `json:"convention,omitempty" yaml:"convention,omitempty"`
}
