// Package convention resolves the response metadata of an API action by
// convention.
//
// Resolution has two independent halves. The response half picks one
// convention definition for the action, either the one the action declares
// or the first definition across the supplied sources that the Matcher
// accepts, and reports the outcomes that definition declares. The error-type
// half walks the action, its declaring type and its module for an ErrorType
// annotation and falls back to ProblemDetails.
//
// Resolution is a pure function of its inputs: it never mutates them, holds
// no locks and caches nothing, so a single Resolver may be shared across
// goroutines.
package convention
