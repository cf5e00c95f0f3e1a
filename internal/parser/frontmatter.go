// Package parser handles parsing markdown documents: YAML frontmatter
// extraction and code-region detection.
package parser

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/aidanlsb/shrike/internal/dates"
)

// Frontmatter represents parsed frontmatter data.
type Frontmatter struct {
	// Fields is the document's metadata as JSON-like values. The engine
	// only reads it and proposes modified copies; write-back goes through
	// AppendFields.
	Fields map[string]any

	// Raw is the raw frontmatter content between the delimiters.
	Raw string

	// EndLine is the line holding the closing delimiter (1-indexed).
	EndLine int
}

// Bounds returns the opening and closing frontmatter line indices.
// Frontmatter is only detected when the first line is '---'. If present
// but unclosed, endLine is -1.
func Bounds(lines []string) (startLine int, endLine int, ok bool) {
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != "---" {
		return 0, -1, false
	}

	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			return 0, i, true
		}
	}

	return 0, -1, true
}

// Parse parses YAML frontmatter from markdown content. Returns nil with
// no error when the document has no frontmatter (including an unclosed
// block); structurally invalid YAML is an error for the caller to report
// as the document's "invalid metadata" state.
func Parse(content string) (*Frontmatter, error) {
	lines := strings.Split(content, "\n")

	_, endLine, ok := Bounds(lines)
	if !ok || endLine == -1 {
		return nil, nil
	}

	raw := strings.Join(lines[1:endLine], "\n")

	var data map[string]any
	if err := yaml.Unmarshal([]byte(raw), &data); err != nil {
		return nil, fmt.Errorf("failed to parse frontmatter as YAML: %w", err)
	}

	// An empty or comments-only block decodes to a nil map; it still
	// counts as frontmatter because it affects body offsets.
	if data == nil {
		data = map[string]any{}
	}

	normalizeValues(data)

	return &Frontmatter{
		Fields:  data,
		Raw:     raw,
		EndLine: endLine + 1,
	}, nil
}

// normalizeValues rewrites YAML-decoded values into the JSON-like shapes
// the rules engine expects: time.Time becomes its canonical string form
// so date fields compare and format uniformly.
func normalizeValues(data map[string]any) {
	for key, value := range data {
		data[key] = normalizeValue(value)
	}
}

func normalizeValue(value any) any {
	switch v := value.(type) {
	case time.Time:
		if v.Hour() == 0 && v.Minute() == 0 && v.Second() == 0 && v.Nanosecond() == 0 {
			return v.Format(dates.DateLayout)
		}
		return v.Format("2006-01-02T15:04:05")
	case []any:
		for i, item := range v {
			v[i] = normalizeValue(item)
		}
		return v
	case map[string]any:
		normalizeValues(v)
		return v
	default:
		return value
	}
}

// Body returns the document content after the frontmatter block, or the
// whole content when fm is nil.
func Body(content string, fm *Frontmatter) string {
	if fm == nil {
		return content
	}
	lines := strings.Split(content, "\n")
	if fm.EndLine >= len(lines) {
		return ""
	}
	return strings.Join(lines[fm.EndLine:], "\n")
}
