package parser

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// AppendFields returns content with the named fields appended to its
// frontmatter block, in the order given, taking values from fields.
// Existing frontmatter text is preserved byte for byte; a document with
// no frontmatter gains a fresh block at the top. The result is the full
// new document, so callers can write it atomically or not at all.
func AppendFields(content string, fm *Frontmatter, fields map[string]any, names []string) (string, error) {
	if len(names) == 0 {
		return content, nil
	}

	var block strings.Builder
	for _, name := range names {
		value, ok := fields[name]
		if !ok {
			return "", fmt.Errorf("field %q has no value to write", name)
		}
		line, err := marshalField(name, value)
		if err != nil {
			return "", err
		}
		block.WriteString(line)
	}

	lines := strings.Split(content, "\n")
	_, endLine, ok := Bounds(lines)
	if !ok || endLine == -1 {
		// No frontmatter block yet: create one.
		return "---\n" + block.String() + "---\n" + content, nil
	}

	var b strings.Builder
	b.WriteString(strings.Join(lines[:endLine], "\n"))
	b.WriteString("\n")
	b.WriteString(block.String())
	b.WriteString(strings.Join(lines[endLine:], "\n"))
	return b.String(), nil
}

// marshalField serializes one key/value pair as YAML. Empty lists keep
// their inline [] form rather than yaml.v3's default block style.
func marshalField(name string, value any) (string, error) {
	if items, ok := value.([]any); ok && len(items) == 0 {
		return name + ": []\n", nil
	}

	out, err := yaml.Marshal(map[string]any{name: value})
	if err != nil {
		return "", fmt.Errorf("failed to serialize field %q: %w", name, err)
	}
	return string(out), nil
}
