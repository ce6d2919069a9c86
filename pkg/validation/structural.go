package validation

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"densityhq/callisto/pkg/params"
	"densityhq/callisto/pkg/schema"
)

// StructuralValidator checks a parameter set against the schema tier selected
// by the mode: required fields, value kinds, inclusive numeric bounds and
// enum membership. Fields outside the active tier are ignored but never
// stripped from the record.
//
// The validator is stateless and safe for concurrent use. The parameter set
// must be non-nil; invalid field values are normal validation outcomes, not
// errors.
type StructuralValidator struct{}

// NewStructuralValidator creates a new structural validator.
func NewStructuralValidator() *StructuralValidator {
	return &StructuralValidator{}
}

// Validate runs the structural pass for the given mode. Multiple violations
// on one field accumulate in encountered order; a kind-level failure on a
// field suppresses its range check so the same problem is not reported twice.
func (v *StructuralValidator) Validate(ps *params.ParameterSet, mode params.Mode) StructuralResult {
	errors := make(map[string][]string)

	for _, field := range schema.For(mode).Fields {
		value, present := ps.Field(field.Name)
		if !present {
			if field.Required {
				errors[field.Name] = append(errors[field.Name], fmt.Sprintf("%s is required", field.Name))
			}
			continue
		}

		for _, msg := range checkField(field, value) {
			errors[field.Name] = append(errors[field.Name], msg)
		}
	}

	return StructuralResult{
		Valid:  len(errors) == 0,
		Errors: errors,
	}
}

// checkField validates a single present value against its descriptor and
// returns the violation messages in encountered order.
func checkField(field schema.FieldSpec, value any) []string {
	switch field.Kind {
	case schema.KindInteger:
		n, ok := value.(int)
		if !ok {
			return []string{fmt.Sprintf("%s must be an integer", field.Name)}
		}
		return checkRange(field, float64(n))

	case schema.KindReal:
		f, ok := value.(float64)
		if !ok {
			return []string{fmt.Sprintf("%s must be a number", field.Name)}
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			// Kind failure: skip the range check.
			return []string{fmt.Sprintf("%s must be a finite number", field.Name)}
		}
		return checkRange(field, f)

	case schema.KindBoolean:
		if _, ok := value.(bool); !ok {
			return []string{fmt.Sprintf("%s must be a boolean", field.Name)}
		}
		return nil

	case schema.KindEnum:
		s, ok := value.(string)
		if !ok || !field.Allows(s) {
			return []string{fmt.Sprintf("%s must be one of: %s", field.Name, strings.Join(field.Allowed, ", "))}
		}
		return nil
	}

	return nil
}

// checkRange checks v against the field's inclusive bounds.
func checkRange(field schema.FieldSpec, v float64) []string {
	switch {
	case field.Min != nil && field.Max != nil:
		if v < *field.Min || v > *field.Max {
			return []string{fmt.Sprintf("%s must be between %s and %s",
				field.Name, formatBound(field, *field.Min), formatBound(field, *field.Max))}
		}
	case field.Min != nil:
		if v < *field.Min {
			return []string{fmt.Sprintf("%s must be at least %s", field.Name, formatBound(field, *field.Min))}
		}
	case field.Max != nil:
		if v > *field.Max {
			return []string{fmt.Sprintf("%s must be at most %s", field.Name, formatBound(field, *field.Max))}
		}
	}
	return nil
}

func formatBound(field schema.FieldSpec, v float64) string {
	if field.Kind == schema.KindInteger {
		return strconv.Itoa(int(v))
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
