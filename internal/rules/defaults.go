package rules

import (
	"time"

	"github.com/aidanlsb/shrike/internal/dates"
)

// DefaultFor synthesizes the value auto-population inserts for a missing
// field. Every type's default reads as non-empty under IsEmpty except
// list, whose canonical default is the empty list; that is why the
// auto-fill trigger below uses key absence, not emptiness, so populate
// cannot loop writing a value that still reads as incomplete.
func DefaultFor(field FieldDeclaration, now time.Time) any {
	switch field.Type {
	case FieldTypeText:
		return ""
	case FieldTypeList:
		return []any{}
	case FieldTypeNumber:
		return 0
	case FieldTypeBoolean:
		return false
	case FieldTypeDate:
		return dates.FormatPattern(now, field.Format)
	default:
		// Unknown types get no default; they also never read as empty.
		return nil
	}
}

// MissingKeys returns the declared required fields whose keys are
// entirely absent from metadata. This is deliberately narrower than
// IsEmpty: a field present but holding an empty list is a user's "not
// yet filled in" state and must not be silently overwritten.
func MissingKeys(rs *Ruleset, metadata map[string]any) []FieldDeclaration {
	var absent []FieldDeclaration
	for _, f := range rs.Fields {
		if !f.Required {
			continue
		}
		if _, ok := metadata[f.Name]; !ok {
			absent = append(absent, f)
		}
	}
	return absent
}

// Populate returns a copy of metadata with synthesized defaults for every
// required field whose key is absent, plus the names filled in field
// order. The input map is never mutated. An empty fill list means there
// was nothing to populate.
func Populate(rs *Ruleset, metadata map[string]any, now time.Time) (map[string]any, []string) {
	absent := MissingKeys(rs, metadata)
	if len(absent) == 0 {
		return metadata, nil
	}

	out := make(map[string]any, len(metadata)+len(absent))
	for k, v := range metadata {
		out[k] = v
	}

	filled := make([]string, 0, len(absent))
	for _, f := range absent {
		value := DefaultFor(f, now)
		if value == nil {
			continue
		}
		out[f.Name] = value
		filled = append(filled, f.Name)
	}
	return out, filled
}
