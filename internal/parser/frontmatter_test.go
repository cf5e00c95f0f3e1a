package parser

import (
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	content := `---
type: O3
attendees:
  - Alice
  - Bob
count: 3
done: false
---

# Body
`
	fm, err := Parse(content)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if fm == nil {
		t.Fatal("expected frontmatter")
	}

	if fm.Fields["type"] != "O3" {
		t.Errorf("type = %#v", fm.Fields["type"])
	}
	attendees, ok := fm.Fields["attendees"].([]any)
	if !ok || len(attendees) != 2 || attendees[0] != "Alice" {
		t.Errorf("attendees = %#v", fm.Fields["attendees"])
	}
	if fm.Fields["count"] != 3 {
		t.Errorf("count = %#v", fm.Fields["count"])
	}
	if fm.Fields["done"] != false {
		t.Errorf("done = %#v", fm.Fields["done"])
	}
	if fm.EndLine != 8 {
		t.Errorf("EndLine = %d, want 8", fm.EndLine)
	}
}

func TestParseNormalizesDates(t *testing.T) {
	content := "---\ndate: 2024-01-15\n---\n"
	fm, err := Parse(content)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if fm.Fields["date"] != "2024-01-15" {
		t.Errorf("date = %#v, want canonical string form", fm.Fields["date"])
	}
}

func TestParseNoFrontmatter(t *testing.T) {
	for _, content := range []string{"# Just a heading\n", "", "text\n---\nnot frontmatter\n---\n"} {
		fm, err := Parse(content)
		if err != nil {
			t.Fatalf("Parse(%q): %v", content, err)
		}
		if fm != nil {
			t.Errorf("Parse(%q) = %+v, want nil", content, fm)
		}
	}
}

func TestParseUnclosedFrontmatter(t *testing.T) {
	fm, err := Parse("---\ntype: x\nno closing delimiter\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if fm != nil {
		t.Errorf("unclosed frontmatter should parse as none, got %+v", fm)
	}
}

func TestParseInvalidYAML(t *testing.T) {
	if _, err := Parse("---\n{unbalanced\n---\n"); err == nil {
		t.Error("expected error for invalid YAML frontmatter")
	}
}

func TestParseEmptyBlock(t *testing.T) {
	fm, err := Parse("---\n---\nbody\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if fm == nil {
		t.Fatal("empty block still counts as frontmatter")
	}
	if len(fm.Fields) != 0 {
		t.Errorf("Fields = %#v", fm.Fields)
	}
}

func TestBody(t *testing.T) {
	content := "---\ntype: x\n---\n# Heading\ntext"
	fm, err := Parse(content)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := Body(content, fm); got != "# Heading\ntext" {
		t.Errorf("Body = %q", got)
	}
	if got := Body("no frontmatter", nil); got != "no frontmatter" {
		t.Errorf("Body without frontmatter = %q", got)
	}
}

func TestAppendFields(t *testing.T) {
	content := "---\ntype: O3\n---\n# Notes\n"
	fm, err := Parse(content)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	fields := map[string]any{
		"attendees": []any{},
		"date":      "2024-01-15",
	}
	got, err := AppendFields(content, fm, fields, []string{"attendees", "date"})
	if err != nil {
		t.Fatalf("AppendFields: %v", err)
	}

	if !strings.Contains(got, "type: O3") {
		t.Errorf("existing field lost:\n%s", got)
	}
	if !strings.Contains(got, "attendees: []") {
		t.Errorf("empty list not inline:\n%s", got)
	}
	if !strings.Contains(got, "date:") {
		t.Errorf("date not appended:\n%s", got)
	}
	if !strings.HasSuffix(got, "# Notes\n") {
		t.Errorf("body altered:\n%s", got)
	}

	// The result must re-parse with the new keys present.
	fm2, err := Parse(got)
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if _, ok := fm2.Fields["attendees"]; !ok {
		t.Error("attendees missing after reparse")
	}
	if fm2.Fields["date"] != "2024-01-15" {
		t.Errorf("date = %#v after reparse", fm2.Fields["date"])
	}
}

func TestAppendFieldsNoFrontmatter(t *testing.T) {
	got, err := AppendFields("# Title\n", nil, map[string]any{"type": "O3"}, []string{"type"})
	if err != nil {
		t.Fatalf("AppendFields: %v", err)
	}
	if !strings.HasPrefix(got, "---\ntype: O3\n---\n") {
		t.Errorf("expected fresh frontmatter block:\n%s", got)
	}
	if !strings.HasSuffix(got, "# Title\n") {
		t.Errorf("body altered:\n%s", got)
	}
}

func TestAppendFieldsNothingToAdd(t *testing.T) {
	content := "---\ntype: x\n---\n"
	got, err := AppendFields(content, nil, nil, nil)
	if err != nil {
		t.Fatalf("AppendFields: %v", err)
	}
	if got != content {
		t.Errorf("content changed with no fields to add")
	}
}
