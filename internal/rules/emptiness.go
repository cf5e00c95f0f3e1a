package rules

import (
	"math"
	"strconv"
	"strings"
)

// IsEmpty reports whether value does not count as "present" for a field
// of type t. This is the single source of truth for field satisfaction:
// required-field completeness checks and trigger-field revalidation both
// go through it.
//
// Per type:
//   - text, date: empty unless a string with non-whitespace content
//   - list: empty when not a list, zero-length, or every element is nil
//     or a whitespace-only string (a freshly created empty attendee list
//     is structurally present but practically empty)
//   - number: empty unless a number or a string convertible to a finite
//     number
//   - boolean: empty unless literally a boolean
//
// An unrecognized type reports never-empty, the safe default for a
// contract violation in a ruleset definition.
func IsEmpty(value any, t FieldType) bool {
	if value == nil {
		return true
	}

	switch t {
	case FieldTypeText, FieldTypeDate:
		s, ok := value.(string)
		return !ok || strings.TrimSpace(s) == ""

	case FieldTypeList:
		items, ok := asList(value)
		if !ok || len(items) == 0 {
			return true
		}
		for _, item := range items {
			if !isBlankElement(item) {
				return false
			}
		}
		return true

	case FieldTypeNumber:
		return !isNumeric(value)

	case FieldTypeBoolean:
		_, ok := value.(bool)
		return !ok

	default:
		return false
	}
}

func asList(value any) ([]any, bool) {
	switch v := value.(type) {
	case []any:
		return v, true
	case []string:
		items := make([]any, len(v))
		for i, s := range v {
			items[i] = s
		}
		return items, true
	}
	return nil, false
}

// isBlankElement reports whether a list element is nil or a
// whitespace-only string. Any other value, including false or 0, counts
// as content.
func isBlankElement(item any) bool {
	if item == nil {
		return true
	}
	if s, ok := item.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}

func isNumeric(value any) bool {
	switch v := value.(type) {
	case int, int64, uint64, float32, float64:
		return true
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return false
		}
		// ParseFloat accepts "Inf" and "NaN"; only finite values count.
		return !math.IsInf(n, 0) && !math.IsNaN(n)
	}
	return false
}
