package domain

import (
	"strconv"
	"strings"
)

// TypeRef names a payload or error type by its identifier. The resolver never
// inspects the referenced type; it only carries the name through.
type TypeRef string

// Well-known type references.
const (
	// ProblemDetails is the error type used when no scope declares one.
	ProblemDetails TypeRef = "ProblemDetails"

	// AnyType matches every type in assignability checks.
	AnyType TypeRef = "any"

	// objectType is accepted as an alias of AnyType.
	objectType TypeRef = "object"
)

// IsZero reports whether the reference is empty.
func (t TypeRef) IsZero() bool {
	return strings.TrimSpace(string(t)) == ""
}

// IsAny reports whether the reference is the universal type.
func (t TypeRef) IsAny() bool {
	return strings.EqualFold(string(t), string(AnyType)) || strings.EqualFold(string(t), string(objectType))
}

func (t TypeRef) String() string {
	return string(t)
}

// StatusClass is an HTTP status code, or StatusDefault for the catch-all
// "default" response class.
type StatusClass int

// StatusDefault is the catch-all response class.
const StatusDefault StatusClass = 0

// IsDefault reports whether s is the catch-all class.
func (s StatusClass) IsDefault() bool {
	return s == StatusDefault
}

// IsValid reports whether s is the default class or a code in 100-599.
func (s StatusClass) IsValid() bool {
	return s == StatusDefault || (s >= 100 && s <= 599)
}

func (s StatusClass) String() string {
	if s.IsDefault() {
		return "default"
	}
	return strconv.Itoa(int(s))
}

// ParseStatusClass parses "default" or a numeric status code.
func ParseStatusClass(raw string) (StatusClass, bool) {
	raw = strings.TrimSpace(raw)
	if strings.EqualFold(raw, "default") {
		return StatusDefault, true
	}
	code, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	s := StatusClass(code)
	if s.IsDefault() || !s.IsValid() {
		return 0, false
	}
	return s, true
}

// Outcome is one possible response of an action: a status class and an
// optional payload type.
type Outcome struct {
	Status StatusClass
	Type   TypeRef
}

// HasType reports whether the outcome carries a payload type.
func (o Outcome) HasType() bool {
	return !o.Type.IsZero()
}

func (o Outcome) String() string {
	if !o.HasType() {
		return o.Status.String()
	}
	return o.Status.String() + ": " + o.Type.String()
}
