package validation

import (
	"fmt"

	"densityhq/callisto/pkg/params"
)

// DependencyValidator detects parameter combinations that are structurally
// legal but semantically poor. Rules are mode-independent: they read
// whichever fields are set on the record, since higher-tier fields may be
// present regardless of the active editing mode.
//
// Each rule is evaluated independently on every run and rule order only
// determines message order. Suggestions are always paired with the error or
// warning that produced them, never standalone.
type DependencyValidator struct{}

// NewDependencyValidator creates a new dependency validator.
func NewDependencyValidator() *DependencyValidator {
	return &DependencyValidator{}
}

// Validate runs all dependency rules against the parameter set.
func (v *DependencyValidator) Validate(ps *params.ParameterSet) DependencyResult {
	r := DependencyResult{
		Errors:      []string{},
		Warnings:    []string{},
		Suggestions: []string{},
	}

	v.checkSampleSizeOrdering(ps, &r)
	v.checkSelectionEpsilon(ps, &r)
	v.checkAlpha(ps, &r)
	v.checkLeafSize(ps, &r)
	v.checkCoreDistJobs(ps, &r)
	v.checkSingleCluster(ps, &r)

	r.HasIssues = len(r.Errors) > 0 || len(r.Warnings) > 0
	return r
}

// checkSampleSizeOrdering enforces the relative ordering of minSamples and
// minClusterSize. Exceeding it is the one dependency-level error; equality is
// merely overly strict.
func (v *DependencyValidator) checkSampleSizeOrdering(ps *params.ParameterSet, r *DependencyResult) {
	if ps.MinSamples == nil || ps.MinClusterSize == nil {
		return
	}

	samples, size := *ps.MinSamples, *ps.MinClusterSize
	switch {
	case samples > size:
		r.Errors = append(r.Errors,
			"minSamples cannot exceed minClusterSize: this configuration produces only outliers")
		r.Suggestions = append(r.Suggestions,
			"set minSamples to a value less than or equal to minClusterSize")
	case samples == size:
		r.Warnings = append(r.Warnings,
			"minSamples equals minClusterSize, which produces overly strict clusters")
		r.Suggestions = append(r.Suggestions,
			fmt.Sprintf("consider minSamples = %d (max(1, minClusterSize - 1))", max(1, size-1)))
	}
}

func (v *DependencyValidator) checkSelectionEpsilon(ps *params.ParameterSet, r *DependencyResult) {
	if ps.ClusterSelectionEpsilon != nil && *ps.ClusterSelectionEpsilon > 0.5 {
		r.Warnings = append(r.Warnings,
			"clusterSelectionEpsilon above 0.5 may merge distinct clusters")
		r.Suggestions = append(r.Suggestions,
			"use a clusterSelectionEpsilon between 0.0 and 0.3")
	}
}

func (v *DependencyValidator) checkAlpha(ps *params.ParameterSet, r *DependencyResult) {
	if ps.Alpha == nil {
		return
	}
	// The two branches are mutually exclusive since 0.1 < 0.9.
	if *ps.Alpha < 0.1 {
		r.Warnings = append(r.Warnings,
			"alpha below 0.1 tends to fragment data into many small clusters")
	} else if *ps.Alpha > 0.9 {
		r.Warnings = append(r.Warnings,
			"alpha above 0.9 tends to produce few large clusters")
	}
}

// checkLeafSize warns when a tree-based neighbor search is paired with a
// leaf size too small to amortize tree traversal.
func (v *DependencyValidator) checkLeafSize(ps *params.ParameterSet, r *DependencyResult) {
	if ps.Algorithm == nil || ps.LeafSize == nil {
		return
	}
	algo := *ps.Algorithm
	if algo == params.AlgorithmBrute || algo == params.AlgorithmAuto {
		return
	}
	if *ps.LeafSize < 10 {
		r.Warnings = append(r.Warnings,
			fmt.Sprintf("leafSize %d is too small for tree algorithm %q", *ps.LeafSize, algo))
		r.Suggestions = append(r.Suggestions, "use a leafSize of at least 10")
	}
}

func (v *DependencyValidator) checkCoreDistJobs(ps *params.ParameterSet, r *DependencyResult) {
	if ps.CoreDistNJobs != nil && *ps.CoreDistNJobs > 8 {
		r.Warnings = append(r.Warnings,
			"coreDistNJobs above 8 is unlikely to improve performance")
	}
}

func (v *DependencyValidator) checkSingleCluster(ps *params.ParameterSet, r *DependencyResult) {
	if ps.AllowSingleCluster == nil || !*ps.AllowSingleCluster {
		return
	}
	if ps.MinClusterSize != nil && *ps.MinClusterSize > 50 {
		r.Warnings = append(r.Warnings,
			"allowSingleCluster with a large minClusterSize risks collapsing everything into one giant cluster")
		r.Suggestions = append(r.Suggestions,
			"disable allowSingleCluster or reduce minClusterSize")
	}
}
