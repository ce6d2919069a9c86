package params

import "fmt"

// Mode selects which schema tier applies during validation.
// Tiers are strictly nested: every field legal in basic is legal and
// semantically identical in advanced and super-advanced.
type Mode string

const (
	// ModeBasic exposes only the two core density parameters.
	ModeBasic Mode = "basic"
	// ModeAdvanced adds distance metric and selection tuning.
	ModeAdvanced Mode = "advanced"
	// ModeSuperAdvanced exposes the full parameter surface.
	ModeSuperAdvanced Mode = "super-advanced"
)

// Modes returns all editing modes in ascending order of configurability.
func Modes() []Mode {
	return []Mode{ModeBasic, ModeAdvanced, ModeSuperAdvanced}
}

// Valid reports whether m is one of the three known mode literals.
func (m Mode) Valid() bool {
	switch m {
	case ModeBasic, ModeAdvanced, ModeSuperAdvanced:
		return true
	}
	return false
}

// ParseMode parses a mode literal. An empty string defaults to basic.
func ParseMode(s string) (Mode, error) {
	if s == "" {
		return ModeBasic, nil
	}
	m := Mode(s)
	if !m.Valid() {
		return "", fmt.Errorf("unknown mode %q (must be one of: basic, advanced, super-advanced)", s)
	}
	return m, nil
}

// Metric is a distance function used by the clustering engine.
type Metric string

const (
	MetricEuclidean Metric = "euclidean"
	MetricManhattan Metric = "manhattan"
	MetricCosine    Metric = "cosine"
	MetricHaversine Metric = "haversine"
)

// Algorithm is a neighbor-search strategy.
type Algorithm string

const (
	AlgorithmAuto     Algorithm = "auto"
	AlgorithmBallTree Algorithm = "ball_tree"
	AlgorithmKDTree   Algorithm = "kd_tree"
	AlgorithmBrute    Algorithm = "brute"
)

// SelectionMethod chooses how flat clusters are extracted from the hierarchy.
type SelectionMethod string

const (
	SelectionEOM  SelectionMethod = "eom"
	SelectionLeaf SelectionMethod = "leaf"
)

// Field names as they appear on the wire and in validation results.
const (
	FieldMinClusterSize               = "minClusterSize"
	FieldMinSamples                   = "minSamples"
	FieldMetric                       = "metric"
	FieldAlpha                        = "alpha"
	FieldClusterSelectionEpsilon      = "clusterSelectionEpsilon"
	FieldAlgorithm                    = "algorithm"
	FieldLeafSize                     = "leafSize"
	FieldApproxMinSpanTree            = "approxMinSpanTree"
	FieldGenMinSpanTree               = "genMinSpanTree"
	FieldCoreDistNJobs                = "coreDistNJobs"
	FieldClusterSelectionMethod       = "clusterSelectionMethod"
	FieldAllowSingleCluster           = "allowSingleCluster"
	FieldPredictionData               = "predictionData"
	FieldMatchReferenceImplementation = "matchReferenceImplementation"
)

// ParameterSet is the full HDBSCAN parameter record. All fields are optional
// pointers; a nil pointer means the field is unset. Enum-valued fields are
// typed strings that may hold non-member values so that enum membership is a
// validation outcome rather than a decode failure.
//
// Fields outside the active mode's tier may be set; validation ignores them
// but they are never stripped from the record.
type ParameterSet struct {
	// Basic tier
	MinClusterSize *int `json:"minClusterSize,omitempty" yaml:"minClusterSize,omitempty"`
	MinSamples     *int `json:"minSamples,omitempty" yaml:"minSamples,omitempty"`

	// Advanced tier
	Metric                  *Metric  `json:"metric,omitempty" yaml:"metric,omitempty"`
	Alpha                   *float64 `json:"alpha,omitempty" yaml:"alpha,omitempty"`
	ClusterSelectionEpsilon *float64 `json:"clusterSelectionEpsilon,omitempty" yaml:"clusterSelectionEpsilon,omitempty"`

	// Super-advanced tier
	Algorithm                    *Algorithm       `json:"algorithm,omitempty" yaml:"algorithm,omitempty"`
	LeafSize                     *int             `json:"leafSize,omitempty" yaml:"leafSize,omitempty"`
	ApproxMinSpanTree            *bool            `json:"approxMinSpanTree,omitempty" yaml:"approxMinSpanTree,omitempty"`
	GenMinSpanTree               *bool            `json:"genMinSpanTree,omitempty" yaml:"genMinSpanTree,omitempty"`
	CoreDistNJobs                *int             `json:"coreDistNJobs,omitempty" yaml:"coreDistNJobs,omitempty"`
	ClusterSelectionMethod       *SelectionMethod `json:"clusterSelectionMethod,omitempty" yaml:"clusterSelectionMethod,omitempty"`
	AllowSingleCluster           *bool            `json:"allowSingleCluster,omitempty" yaml:"allowSingleCluster,omitempty"`
	PredictionData               *bool            `json:"predictionData,omitempty" yaml:"predictionData,omitempty"`
	MatchReferenceImplementation *bool            `json:"matchReferenceImplementation,omitempty" yaml:"matchReferenceImplementation,omitempty"`
}

// Field returns the value of the named field and whether it is set.
// Integer fields are returned as int, real fields as float64, boolean fields
// as bool and enum fields as string.
func (p *ParameterSet) Field(name string) (any, bool) {
	switch name {
	case FieldMinClusterSize:
		if p.MinClusterSize != nil {
			return *p.MinClusterSize, true
		}
	case FieldMinSamples:
		if p.MinSamples != nil {
			return *p.MinSamples, true
		}
	case FieldMetric:
		if p.Metric != nil {
			return string(*p.Metric), true
		}
	case FieldAlpha:
		if p.Alpha != nil {
			return *p.Alpha, true
		}
	case FieldClusterSelectionEpsilon:
		if p.ClusterSelectionEpsilon != nil {
			return *p.ClusterSelectionEpsilon, true
		}
	case FieldAlgorithm:
		if p.Algorithm != nil {
			return string(*p.Algorithm), true
		}
	case FieldLeafSize:
		if p.LeafSize != nil {
			return *p.LeafSize, true
		}
	case FieldApproxMinSpanTree:
		if p.ApproxMinSpanTree != nil {
			return *p.ApproxMinSpanTree, true
		}
	case FieldGenMinSpanTree:
		if p.GenMinSpanTree != nil {
			return *p.GenMinSpanTree, true
		}
	case FieldCoreDistNJobs:
		if p.CoreDistNJobs != nil {
			return *p.CoreDistNJobs, true
		}
	case FieldClusterSelectionMethod:
		if p.ClusterSelectionMethod != nil {
			return string(*p.ClusterSelectionMethod), true
		}
	case FieldAllowSingleCluster:
		if p.AllowSingleCluster != nil {
			return *p.AllowSingleCluster, true
		}
	case FieldPredictionData:
		if p.PredictionData != nil {
			return *p.PredictionData, true
		}
	case FieldMatchReferenceImplementation:
		if p.MatchReferenceImplementation != nil {
			return *p.MatchReferenceImplementation, true
		}
	}
	return nil, false
}

// Clone returns a deep copy of the parameter set.
func (p *ParameterSet) Clone() *ParameterSet {
	if p == nil {
		return nil
	}
	c := &ParameterSet{}
	c.MinClusterSize = cloneVal(p.MinClusterSize)
	c.MinSamples = cloneVal(p.MinSamples)
	c.Metric = cloneVal(p.Metric)
	c.Alpha = cloneVal(p.Alpha)
	c.ClusterSelectionEpsilon = cloneVal(p.ClusterSelectionEpsilon)
	c.Algorithm = cloneVal(p.Algorithm)
	c.LeafSize = cloneVal(p.LeafSize)
	c.ApproxMinSpanTree = cloneVal(p.ApproxMinSpanTree)
	c.GenMinSpanTree = cloneVal(p.GenMinSpanTree)
	c.CoreDistNJobs = cloneVal(p.CoreDistNJobs)
	c.ClusterSelectionMethod = cloneVal(p.ClusterSelectionMethod)
	c.AllowSingleCluster = cloneVal(p.AllowSingleCluster)
	c.PredictionData = cloneVal(p.PredictionData)
	c.MatchReferenceImplementation = cloneVal(p.MatchReferenceImplementation)
	return c
}

func cloneVal[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

// Ptr returns a pointer to v. It exists to make literal parameter sets
// convenient to construct.
func Ptr[T any](v T) *T {
	return &v
}
