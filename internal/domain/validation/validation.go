// Package validation checks a single value against a set of optional
// constraints. It reports only pass/fail; callers that need to explain a
// failure aggregate rules and present one message of their own.
package validation

import (
	"strings"
	"unicode/utf8"
)

// Rule pairs a value with the constraints it must satisfy. A nil bound is
// not checked. Length bounds apply only to string values; range bounds apply
// only to numeric values (int, int64, float64).
type Rule struct {
	Value     any
	Required  bool
	MinLength *int
	MaxLength *int
	Min       *int
	Max       *int
}

// Validate reports whether r.Value satisfies every constraint set on r.
func Validate(r Rule) bool {
	switch v := r.Value.(type) {
	case string:
		return validateText(v, r)
	case int:
		return validateNumber(float64(v), r)
	case int64:
		return validateNumber(float64(v), r)
	case float64:
		return validateNumber(v, r)
	default:
		// Unknown kinds only meet "required" when present.
		return !r.Required || r.Value != nil
	}
}

// All reports whether every rule passes. It evaluates all rules.
func All(rules ...Rule) bool {
	ok := true
	for _, r := range rules {
		if !Validate(r) {
			ok = false
		}
	}
	return ok
}

// Int is a convenience for building bounds inline: Rule{MinLength: validation.Int(5)}.
func Int(v int) *int {
	return &v
}

func validateText(v string, r Rule) bool {
	if r.Required && strings.TrimSpace(v) == "" {
		return false
	}
	n := utf8.RuneCountInString(v)
	if r.MinLength != nil && n < *r.MinLength {
		return false
	}
	if r.MaxLength != nil && n > *r.MaxLength {
		return false
	}
	return true
}

func validateNumber(v float64, r Rule) bool {
	if r.Min != nil && v < float64(*r.Min) {
		return false
	}
	if r.Max != nil && v > float64(*r.Max) {
		return false
	}
	return true
}
