package schema

import (
	"densityhq/callisto/pkg/params"
)

// ApplyDefaults returns a copy of ps with every unset field of the active
// tier filled from its schema default. Fields with no default (the required
// basic fields) are left unset. The input is never mutated.
func ApplyDefaults(ps *params.ParameterSet, mode params.Mode) *params.ParameterSet {
	out := ps.Clone()
	if out == nil {
		out = &params.ParameterSet{}
	}

	for _, f := range For(mode).Fields {
		if f.Default == nil {
			continue
		}
		if _, present := out.Field(f.Name); present {
			continue
		}
		setDefault(out, f)
	}

	return out
}

// Defaults returns a parameter set holding only the schema defaults for the
// active tier.
func Defaults(mode params.Mode) *params.ParameterSet {
	return ApplyDefaults(&params.ParameterSet{}, mode)
}

func setDefault(ps *params.ParameterSet, f FieldSpec) {
	switch f.Name {
	case params.FieldMetric:
		ps.Metric = params.Ptr(params.Metric(f.Default.(string)))
	case params.FieldAlpha:
		ps.Alpha = params.Ptr(f.Default.(float64))
	case params.FieldClusterSelectionEpsilon:
		ps.ClusterSelectionEpsilon = params.Ptr(f.Default.(float64))
	case params.FieldAlgorithm:
		ps.Algorithm = params.Ptr(params.Algorithm(f.Default.(string)))
	case params.FieldLeafSize:
		ps.LeafSize = params.Ptr(f.Default.(int))
	case params.FieldApproxMinSpanTree:
		ps.ApproxMinSpanTree = params.Ptr(f.Default.(bool))
	case params.FieldGenMinSpanTree:
		ps.GenMinSpanTree = params.Ptr(f.Default.(bool))
	case params.FieldCoreDistNJobs:
		ps.CoreDistNJobs = params.Ptr(f.Default.(int))
	case params.FieldClusterSelectionMethod:
		ps.ClusterSelectionMethod = params.Ptr(params.SelectionMethod(f.Default.(string)))
	case params.FieldAllowSingleCluster:
		ps.AllowSingleCluster = params.Ptr(f.Default.(bool))
	case params.FieldPredictionData:
		ps.PredictionData = params.Ptr(f.Default.(bool))
	case params.FieldMatchReferenceImplementation:
		ps.MatchReferenceImplementation = params.Ptr(f.Default.(bool))
	}
}
