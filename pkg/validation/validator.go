package validation

import (
	"densityhq/callisto/pkg/params"
)

// Validator orchestrates the structural and dependency passes and carries
// its own small set of advisory heuristics on the basic-tier fields.
type Validator struct {
	structural *StructuralValidator
	dependency *DependencyValidator
}

// NewValidator creates a validator with all passes.
func NewValidator() *Validator {
	return &Validator{
		structural: NewStructuralValidator(),
		dependency: NewDependencyValidator(),
	}
}

// Validate runs the structural pass for the given mode and merges in the
// orchestrator's own advisory warnings. Valid reflects structural validity
// only; the dependency pass is a separate channel exposed through
// ValidateDependencies and must be combined by the caller when gating
// submission.
//
// The minSamples/minClusterSize ordering heuristic here intentionally
// overlaps with the dependency pass: this channel feeds the merged result
// consumed by the editor's inline feedback, while the dependency channel
// feeds the blocking banner. Both fire independently.
func (v *Validator) Validate(ps *params.ParameterSet, mode params.Mode) Result {
	structural := v.structural.Validate(ps, mode)

	result := Result{
		Valid:       structural.Valid,
		Errors:      structural.Errors,
		Warnings:    []string{},
		Suggestions: []string{},
	}

	if ps.MinSamples != nil && ps.MinClusterSize != nil && *ps.MinSamples > *ps.MinClusterSize {
		result.Warnings = append(result.Warnings,
			"minSamples exceeds minClusterSize and will mark most points as outliers")
		result.Suggestions = append(result.Suggestions,
			"set minSamples to a value less than or equal to minClusterSize")
	}

	if ps.MinClusterSize != nil {
		if *ps.MinClusterSize < 5 {
			result.Warnings = append(result.Warnings,
				"very small minClusterSize may produce statistically insignificant clusters")
		} else if *ps.MinClusterSize > 100 {
			result.Warnings = append(result.Warnings,
				"very large minClusterSize may produce very few clusters or many outliers")
		}
	}

	return result
}

// ValidateStructural runs only the structural pass.
func (v *Validator) ValidateStructural(ps *params.ParameterSet, mode params.Mode) StructuralResult {
	return v.structural.Validate(ps, mode)
}

// ValidateDependencies runs only the cross-field dependency pass.
func (v *Validator) ValidateDependencies(ps *params.ParameterSet) DependencyResult {
	return v.dependency.Validate(ps)
}

// The package-level entry points share one stateless validator.
var defaultValidator = NewValidator()

// Validate runs a full synchronous validation pass. It is a pure function of
// its inputs: identical parameter sets yield deep-equal results.
func Validate(ps *params.ParameterSet, mode params.Mode) Result {
	return defaultValidator.Validate(ps, mode)
}

// ValidateStructure runs only the structural pass against the mode's schema.
func ValidateStructure(ps *params.ParameterSet, mode params.Mode) StructuralResult {
	return defaultValidator.ValidateStructural(ps, mode)
}

// ValidateDependencies runs only the dependency pass.
func ValidateDependencies(ps *params.ParameterSet) DependencyResult {
	return defaultValidator.ValidateDependencies(ps)
}
