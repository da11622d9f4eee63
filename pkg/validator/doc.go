// Package validator provides small declarative validation rules and an error
// type that collects field-level failures.
//
// A Rule couples a Check function with the ValidationError reported when the
// check fails. Apply evaluates rules in order and aggregates every failure
// into a ValidationErrors value which implements error. First evaluates rules
// in order and stops at the first failure, which suits checks that depend on
// each other.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.RequiredString("BuildDropPath", dropPath),
//	    validator.RequiredSlice("ManifestInfo", infos),
//	)
//	if verrs := validator.ExtractValidationErrors(err); slices.Contains(verrs.Fields(), "BuildDropPath") {
//	    // ...
//	}
//
// Rules are plain values with no shared state, so they are safe to build and
// evaluate concurrently.
package validator
