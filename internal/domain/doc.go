// Package domain contains the value types shared by the convention
// resolution sub-packages. Sub-packages hold the annotation model
// (domain/annotation), the API surface being described (domain/api), the
// convention resolver itself (domain/convention) and the default structural
// matcher (domain/matching).
//
// This root package holds sentinel errors, validation types, type references
// and the Outcome value produced by resolution.
package domain
