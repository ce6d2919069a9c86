package validation

// GeneralErrorField is the reserved field key used when a validation pass
// fails unexpectedly and the failure is downgraded to a synthetic error.
const GeneralErrorField = "_general"

// Result is the merged outcome of a full validation pass. Valid reflects
// structural validity only: dependency-layer findings surface through
// DependencyResult and never flip Valid. A Result is constructed fresh on
// every run and never mutated after being returned.
type Result struct {
	Valid       bool                `json:"isValid"`
	Errors      map[string][]string `json:"errors"`
	Warnings    []string            `json:"warnings"`
	Suggestions []string            `json:"suggestions"`
}

// EmptyResult returns the valid zero result used as the initial and cleared
// state of live validation.
func EmptyResult() Result {
	return Result{
		Valid:       true,
		Errors:      map[string][]string{},
		Warnings:    []string{},
		Suggestions: []string{},
	}
}

// InternalErrorResult returns the synthetic result substituted when a
// validation pass panics. The failure is reported under GeneralErrorField so
// a live editing session keeps functioning.
func InternalErrorResult() Result {
	return Result{
		Valid:       false,
		Errors:      map[string][]string{GeneralErrorField: {"unexpected validation error"}},
		Warnings:    []string{},
		Suggestions: []string{},
	}
}

// StructuralResult is the outcome of the structural pass alone: per-field
// error message lists keyed by wire field name. Valid is true exactly when
// Errors is empty.
type StructuralResult struct {
	Valid  bool                `json:"isValid"`
	Errors map[string][]string `json:"errors"`
}

// DependencyResult is the outcome of the cross-field dependency pass. It is
// recomputed purely from the current parameter set on every change and
// carries no identity.
//
// HasIssues is advisory-blocking: editors prevent submission while it is
// true even though none of these findings are schema violations. That is a
// product policy of the consuming surfaces, not a property of the validator.
type DependencyResult struct {
	Errors      []string `json:"errors"`
	Warnings    []string `json:"warnings"`
	Suggestions []string `json:"suggestions"`
	HasIssues   bool     `json:"hasIssues"`
}
