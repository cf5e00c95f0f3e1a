// Package placeholder provides canonical resolution of {name} template
// placeholders against document metadata.
//
// Placeholder grammar:
//
//	{name}
//	{name:modifier}
//
// Notes:
//   - {created} resolves against the document creation timestamp, with an
//     optional date-format modifier (see the dates package for tokens).
//   - A placeholder naming a field the metadata lacks is left literal; the
//     unresolved text is the caller's signal that a template referenced an
//     unknown field.
//   - This dialect is intentionally flat: no dotted paths, no block
//     constructs. The prompt package implements the richer dialect used
//     for inference prompts; the two must not be merged.
package placeholder

import (
	"regexp"
	"strings"
	"time"

	"github.com/aidanlsb/shrike/internal/dates"
)

// StripModifier removes markdown-ish decoration from the resolved value
// instead of treating the modifier as a date-format pattern.
const StripModifier = "strip"

// CreatedName is the pseudo-field resolved from the creation timestamp.
const CreatedName = "created"

// re matches {name} or {name:modifier}. The modifier may contain any
// character except braces (date-format patterns include spaces and colons
// after the first separator are part of the pattern).
var re = regexp.MustCompile(`\{([A-Za-z0-9_][A-Za-z0-9_ -]*?)(?::([^{}]+))?\}`)

// Resolve substitutes each placeholder occurrence in template, left to
// right, against fields. createdAt may be nil; {created} is then left
// literal.
func Resolve(template string, fields map[string]any, createdAt *time.Time) string {
	return re.ReplaceAllStringFunc(template, func(literal string) string {
		m := re.FindStringSubmatch(literal)
		name := m[1]
		modifier := m[2]

		if name == CreatedName {
			if createdAt == nil {
				return literal
			}
			return dates.FormatPattern(*createdAt, modifier)
		}

		value, ok := lookup(fields, name)
		if !ok {
			return literal
		}

		if name == "date" && modifier != "" && modifier != StripModifier {
			if t, parsed := dates.ParseValue(Stringify(value)); parsed {
				return dates.FormatPattern(t, modifier)
			}
			return Stringify(value)
		}

		if modifier == StripModifier {
			return stringifyStripped(value)
		}
		return Stringify(value)
	})
}

func lookup(fields map[string]any, name string) (any, bool) {
	if fields == nil {
		return nil, false
	}
	v, ok := fields[name]
	return v, ok
}

// Stringify renders a metadata value as template output. Lists are joined
// with ", ".
func Stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	case int:
		return dates.FormatNumber(float64(v))
	case int64:
		return dates.FormatNumber(float64(v))
	case uint64:
		return dates.FormatNumber(float64(v))
	case float64:
		return dates.FormatNumber(v)
	case float32:
		return dates.FormatNumber(float64(v))
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, Stringify(item))
		}
		return strings.Join(parts, ", ")
	case []string:
		return strings.Join(v, ", ")
	default:
		return ""
	}
}

// stringifyStripped renders a value with markdown decoration removed.
// List elements are stripped individually before joining.
func stringifyStripped(value any) string {
	switch v := value.(type) {
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, StripDecoration(Stringify(item)))
		}
		return strings.Join(parts, ", ")
	case []string:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, StripDecoration(item))
		}
		return strings.Join(parts, ", ")
	default:
		return StripDecoration(Stringify(value))
	}
}

var decorationChars = strings.NewReplacer(
	"@", "", "#", "", "*", "", "_", "", "~", "", "`", "", "|", "", "\\", "", "/", "",
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// StripDecoration removes markdown-ish decoration from a string:
// bracket/paren/brace wrapping ([[x]], [x], (x), {x}) is unwrapped, the
// symbols @ # * _ ~ ` | \ / are deleted, then whitespace is collapsed and
// trimmed.
func StripDecoration(s string) string {
	for {
		t := strings.TrimSpace(s)
		switch {
		case len(t) >= 4 && strings.HasPrefix(t, "[[") && strings.HasSuffix(t, "]]"):
			s = t[2 : len(t)-2]
		case wrapped(t, '[', ']'), wrapped(t, '(', ')'), wrapped(t, '{', '}'):
			s = t[1 : len(t)-1]
		default:
			s = t
			s = decorationChars.Replace(s)
			s = whitespaceRun.ReplaceAllString(s, " ")
			return strings.TrimSpace(s)
		}
	}
}

func wrapped(s string, open, close byte) bool {
	return len(s) >= 2 && s[0] == open && s[len(s)-1] == close
}
