package ui

import (
	"strings"
	"testing"
)

func TestStatusHelpers(t *testing.T) {
	if got := Success("done"); got != "✓ done" {
		t.Errorf("Success = %q", got)
	}
	if got := Errorf("bad %s", "input"); got != "✗ bad input" {
		t.Errorf("Errorf = %q", got)
	}
	if got := Warning("careful"); got != "⚠ careful" {
		t.Errorf("Warning = %q", got)
	}
}

func TestCount(t *testing.T) {
	if got := Count(1, "issue", "issues"); got != "(1 issue)" {
		t.Errorf("Count(1) = %q", got)
	}
	if got := Count(3, "issue", "issues"); got != "(3 issues)" {
		t.Errorf("Count(3) = %q", got)
	}
}

func TestSetAccent(t *testing.T) {
	defer SetAccent(defaultAccent)

	SetAccent("#FF0000")
	if AccentColor() != "#FF0000" {
		t.Errorf("AccentColor = %q", AccentColor())
	}

	// Blank values are ignored.
	SetAccent("  ")
	if AccentColor() != "#FF0000" {
		t.Errorf("blank SetAccent changed color to %q", AccentColor())
	}
}

func TestTable(t *testing.T) {
	tbl := NewTable(3)
	tbl.AddRow("path", "ruleset", "state")
	tbl.AddRow("inbox/a.md", "o3", "incomplete")

	out := tbl.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[1], "inbox/a.md  ") {
		t.Errorf("column alignment off: %q", lines[1])
	}
}

func TestTableEmpty(t *testing.T) {
	if out := NewTable(2).String(); out != "" {
		t.Errorf("empty table rendered %q", out)
	}
}

func TestRenderMarkdown(t *testing.T) {
	out, err := RenderMarkdown("# Title\n\nsome text\n", 80)
	if err != nil {
		t.Fatalf("RenderMarkdown: %v", err)
	}
	if !strings.Contains(out, "Title") || !strings.Contains(out, "some text") {
		t.Errorf("rendered output missing content:\n%s", out)
	}
	if strings.HasSuffix(out, "\n\n") {
		t.Error("trailing newlines not normalized")
	}
}
