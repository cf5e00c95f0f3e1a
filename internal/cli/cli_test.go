package cli

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/aidanlsb/shrike/internal/index"
	"github.com/aidanlsb/shrike/internal/rules"
	"github.com/aidanlsb/shrike/internal/testutil"
	"github.com/aidanlsb/shrike/internal/vault"
)

const testRules = `rulesets:
  - name: o3
    match:
      type: O3
    fields:
      - name: attendees
        type: list
        required: true
      - name: date
        type: date
        format: YYYY-MM-DD
        required: true
    title_template: "{attendees} O3 - {date}"
    path_template: "Areas/O3s"
    rename: always
`

func TestEnsureGitignore(t *testing.T) {
	v := testutil.NewTestVault(t).Build()

	status, err := ensureGitignore(v.Path)
	if err != nil {
		t.Fatalf("ensureGitignore: %v", err)
	}
	if status != "created" {
		t.Errorf("status = %q, want created", status)
	}
	v.AssertFileContains(".gitignore", ".shrike/")

	// Second run is a no-op.
	status, err = ensureGitignore(v.Path)
	if err != nil {
		t.Fatal(err)
	}
	if status != "kept" {
		t.Errorf("status = %q, want kept", status)
	}
}

func TestEnsureGitignoreAppends(t *testing.T) {
	v := testutil.NewTestVault(t).
		WithFile(".gitignore", "node_modules/\n").
		Build()

	status, err := ensureGitignore(v.Path)
	if err != nil {
		t.Fatal(err)
	}
	if status != "updated" {
		t.Errorf("status = %q, want updated", status)
	}
	v.AssertFileContains(".gitignore", "node_modules/")
	v.AssertFileContains(".gitignore", ".shrike/")
}

func TestBuildReport(t *testing.T) {
	v := testutil.NewTestVault(t).
		WithRules(testRules).
		WithFile("inbox/a.md", "---\ntype: O3\nattendees: [Alice]\n---\n").
		WithFile("inbox/b.md", "---\ntype: Memo\n---\n").
		Build()

	rulesets, _, err := loadRulesets(v.Path)
	if err != nil {
		t.Fatalf("loadRulesets: %v", err)
	}

	a, err := vault.LoadNote(v.Path, "inbox/a.md")
	if err != nil {
		t.Fatal(err)
	}
	report := buildReport(a, rulesets)
	if report.Ruleset != "o3" || !report.Matches || report.Complete {
		t.Errorf("report = %+v", report)
	}
	if len(report.Missing) != 1 || report.Missing[0] != "date" {
		t.Errorf("Missing = %v", report.Missing)
	}

	b, err := vault.LoadNote(v.Path, "inbox/b.md")
	if err != nil {
		t.Fatal(err)
	}
	report = buildReport(b, rulesets)
	if report.Ruleset != "" || report.Matches {
		t.Errorf("non-matching report = %+v", report)
	}
}

func TestRefreshIndex(t *testing.T) {
	v := testutil.NewTestVault(t).
		WithRules(testRules).
		WithFile("inbox/a.md", "---\ntype: O3\nattendees: [Alice]\ndate: 2024-01-15\n---\n").
		WithFile("inbox/bad.md", "---\n{broken\n---\n").
		Build()

	db, err := index.Open(v.Path)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	warnings, err := refreshIndex(v.Path, db)
	if err != nil {
		t.Fatalf("refreshIndex: %v", err)
	}
	if len(warnings) != 1 || warnings[0].Path != "inbox/bad.md" {
		t.Errorf("warnings = %+v", warnings)
	}

	status, err := db.Get("inbox/a.md")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if status.Ruleset != "o3" || !status.Complete {
		t.Errorf("status = %+v", status)
	}
}

func TestPopulateRefusesBlankedTrigger(t *testing.T) {
	v := testutil.NewTestVault(t).
		WithRules(`rulesets:
  - name: blank
    match:
      type: ""
    fields:
      - name: date
        type: date
        required: true
`).
		WithFile("inbox/a.md", "---\ntype: \"\"\n---\nbody\n").
		WithFile("config.toml", "").
		Build()

	before := v.ReadFile("inbox/a.md")

	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
	rootCmd.SetArgs([]string{
		"--vault-path", v.Path,
		"--config", filepath.Join(v.Path, "config.toml"),
		"populate", "inbox/a.md",
	})
	err := rootCmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "trigger") {
		t.Fatalf("expected blanked-trigger refusal, got %v", err)
	}
	if v.ReadFile("inbox/a.md") != before {
		t.Error("populate wrote to a note with a blanked trigger")
	}
}

func TestEvaluationState(t *testing.T) {
	rs := &rules.Ruleset{Name: "o3"}

	tests := []struct {
		name string
		ev   rules.Evaluation
		want string
	}{
		{"no match", rules.NoMatch(), "no match"},
		{"blanked trigger", rules.Evaluation{Ruleset: rs, Missing: []string{"type"}}, "matched o3, trigger blanked (type)"},
		{"incomplete", rules.Evaluation{Ruleset: rs, Matches: true, Missing: []string{"date"}}, "matched o3, missing date"},
		{"complete", rules.Evaluation{Ruleset: rs, Matches: true, Complete: true}, "matched o3, complete"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := evaluationState(tt.ev); got != tt.want {
				t.Errorf("evaluationState = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatMatchDeterministic(t *testing.T) {
	match := map[string]any{"type": "O3", "area": "work"}
	if got := formatMatch(match); got != "area=work, type=O3" {
		t.Errorf("formatMatch = %q", got)
	}
}

func TestScanNoteExcludesCode(t *testing.T) {
	v := testutil.NewTestVault(t).
		WithFile("a.md", "<<keep>>\n\n```\n<<skip>>\n```\n").
		Build()

	note, err := vault.LoadNote(v.Path, "a.md")
	if err != nil {
		t.Fatal(err)
	}

	markers := scanNote(note)
	if len(markers) != 1 || markers[0].Inner != "keep" {
		t.Errorf("markers = %+v", markers)
	}
}

func TestPromptData(t *testing.T) {
	v := testutil.NewTestVault(t).
		WithFile("inbox/Weekly Sync.md", "---\ntype: O3\n---\nbody with <<topic>>\n").
		Build()

	note, err := vault.LoadNote(v.Path, "inbox/Weekly Sync.md")
	if err != nil {
		t.Fatal(err)
	}

	data := promptData(note)
	noteData, ok := data["note"].(map[string]any)
	if !ok {
		t.Fatalf("data = %+v", data)
	}
	if noteData["title"] != "Weekly Sync" {
		t.Errorf("title = %v", noteData["title"])
	}
	markers, _ := noteData["markers"].([]any)
	if len(markers) != 1 || markers[0] != "topic" {
		t.Errorf("markers = %v", markers)
	}
	if !strings.Contains(noteData["body"].(string), "<<topic>>") {
		t.Errorf("body = %v", noteData["body"])
	}
}

func TestNoteCreatedAtPrefersFrontmatter(t *testing.T) {
	v := testutil.NewTestVault(t).
		WithFile("a.md", "---\ncreated: 2024-01-15\n---\n").
		WithFile("b.md", "plain").
		Build()

	a, err := vault.LoadNote(v.Path, "a.md")
	if err != nil {
		t.Fatal(err)
	}
	got := noteCreatedAt(a)
	if got == nil || got.Format("2006-01-02") != "2024-01-15" {
		t.Errorf("noteCreatedAt = %v", got)
	}

	b, err := vault.LoadNote(v.Path, "b.md")
	if err != nil {
		t.Fatal(err)
	}
	if noteCreatedAt(b) == nil {
		t.Error("expected file mtime fallback")
	}
}
