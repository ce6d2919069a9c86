// Package validation implements the layered validation engine for HDBSCAN
// clustering parameters.
//
// The engine runs two independent passes:
//
// 1. Structural Validation: schema conformance for the active editing mode
// (required fields, value kinds, inclusive bounds, enum membership)
//
// 2. Dependency Validation: cross-field heuristics that flag combinations
// which are schema-valid but semantically poor
//
// # Basic Usage
//
// Run a full synchronous pass:
//
//	result := validation.Validate(ps, params.ModeAdvanced)
//	if !result.Valid {
//	    for field, msgs := range result.Errors {
//	        fmt.Println(field, msgs)
//	    }
//	}
//
// Run the passes separately:
//
//	structural := validation.ValidateStructure(ps, mode)
//	deps := validation.ValidateDependencies(ps)
//	canSubmit := structural.Valid && !deps.HasIssues
//
// # Result Channels
//
// Result.Valid reflects structural validity only. Dependency findings travel
// in a separate DependencyResult whose HasIssues flag is advisory-blocking:
// editor surfaces gate submission on it by product policy even though none of
// its findings are schema violations. The two channels are merged by the
// caller, never by the engine.
//
// # Error Philosophy
//
// Invalid input is a validation outcome, not a Go error: the validators never
// return errors or panic for malformed parameter values. Only a nil parameter
// set is a caller contract violation.
package validation
