package schema

import (
	"densityhq/callisto/pkg/params"
)

// Kind is the value kind of a parameter field.
type Kind string

const (
	KindInteger Kind = "integer"
	KindReal    Kind = "real"
	KindBoolean Kind = "boolean"
	KindEnum    Kind = "enum"
)

// FieldSpec is a pure-data constraint descriptor for a single parameter.
// Min and Max are inclusive where set; a nil bound means unbounded on that
// side. Allowed lists enum members. Default is the schema default value, nil
// when the field has none.
type FieldSpec struct {
	Name     string   `json:"name"`
	Kind     Kind     `json:"kind"`
	Required bool     `json:"required"`
	Min      *float64 `json:"min,omitempty"`
	Max      *float64 `json:"max,omitempty"`
	Allowed  []string `json:"allowedValues,omitempty"`
	Default  any      `json:"default,omitempty"`
}

// Allows reports whether v is a member of the field's enum values.
func (f FieldSpec) Allows(v string) bool {
	for _, a := range f.Allowed {
		if a == v {
			return true
		}
	}
	return false
}

// Schema is the set of field descriptors active in one editing mode.
type Schema struct {
	Mode   params.Mode `json:"mode"`
	Fields []FieldSpec `json:"fields"`
}

// Lookup returns the descriptor for the named field, if it belongs to the
// schema's tier.
func (s Schema) Lookup(name string) (FieldSpec, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSpec{}, false
}

// FieldNames returns the names of all fields in the schema, in declaration
// order.
func (s Schema) FieldNames() []string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name
	}
	return names
}

func bound(v float64) *float64 { return &v }

// fieldTable is the canonical ordered descriptor table. Tier membership is
// positional: basic fields first, then advanced, then super-advanced.
var fieldTable = []FieldSpec{
	{Name: params.FieldMinClusterSize, Kind: KindInteger, Required: true, Min: bound(2), Max: bound(1000)},
	{Name: params.FieldMinSamples, Kind: KindInteger, Min: bound(1), Max: bound(100)},
	{Name: params.FieldMetric, Kind: KindEnum, Allowed: []string{"euclidean", "manhattan", "cosine", "haversine"}, Default: string(params.MetricEuclidean)},
	{Name: params.FieldAlpha, Kind: KindReal, Min: bound(0.0), Max: bound(1.0), Default: 1.0},
	{Name: params.FieldClusterSelectionEpsilon, Kind: KindReal, Min: bound(0.0), Default: 0.0},
	{Name: params.FieldAlgorithm, Kind: KindEnum, Allowed: []string{"auto", "ball_tree", "kd_tree", "brute"}, Default: string(params.AlgorithmAuto)},
	{Name: params.FieldLeafSize, Kind: KindInteger, Min: bound(1), Default: 30},
	{Name: params.FieldApproxMinSpanTree, Kind: KindBoolean, Default: true},
	{Name: params.FieldGenMinSpanTree, Kind: KindBoolean, Default: false},
	{Name: params.FieldCoreDistNJobs, Kind: KindInteger, Min: bound(1), Default: 1},
	{Name: params.FieldClusterSelectionMethod, Kind: KindEnum, Allowed: []string{"eom", "leaf"}, Default: string(params.SelectionEOM)},
	{Name: params.FieldAllowSingleCluster, Kind: KindBoolean, Default: false},
	{Name: params.FieldPredictionData, Kind: KindBoolean, Default: false},
	{Name: params.FieldMatchReferenceImplementation, Kind: KindBoolean, Default: false},
}

// Tier boundaries within fieldTable.
const (
	basicFieldCount    = 2
	advancedFieldCount = 5
)

// For returns the schema for the requested mode. Unknown modes fall back to
// the basic tier.
func For(mode params.Mode) Schema {
	n := basicFieldCount
	switch mode {
	case params.ModeAdvanced:
		n = advancedFieldCount
	case params.ModeSuperAdvanced:
		n = len(fieldTable)
	}
	fields := make([]FieldSpec, n)
	copy(fields, fieldTable[:n])
	return Schema{Mode: mode, Fields: fields}
}

// LookupField returns the descriptor for a field name regardless of tier.
func LookupField(name string) (FieldSpec, bool) {
	for _, f := range fieldTable {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSpec{}, false
}

// AllFieldNames returns every known field name in tier order.
func AllFieldNames() []string {
	names := make([]string, len(fieldTable))
	for i, f := range fieldTable {
		names[i] = f.Name
	}
	return names
}
