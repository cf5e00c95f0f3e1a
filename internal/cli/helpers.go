package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/aidanlsb/shrike/internal/rules"
	"github.com/aidanlsb/shrike/internal/vault"
)

// loadRulesets loads rules.yaml from the vault, converting lint issues
// into CLI warnings.
func loadRulesets(vaultPath string) ([]rules.Ruleset, []Warning, error) {
	rulesets, issues, err := rules.Load(vaultPath)
	if err != nil {
		return nil, nil, err
	}

	var warnings []Warning
	for _, issue := range issues {
		warnings = append(warnings, Warning{
			Code:    WarnRulesIssue,
			Message: issue.String(),
		})
	}
	return rulesets, warnings, nil
}

// noteCreatedAt returns the note's creation timestamp for the {created}
// placeholder. A `created` frontmatter field wins; otherwise the file
// modification time stands in.
func noteCreatedAt(note vault.Note) *time.Time {
	if raw, ok := note.Fields()["created"]; ok {
		if s, ok := raw.(string); ok {
			if t, ok := parseCreated(s); ok {
				return &t
			}
		}
	}

	info, err := os.Stat(note.Path)
	if err != nil {
		return nil
	}
	t := info.ModTime()
	return &t
}

func parseCreated(s string) (time.Time, bool) {
	for _, layout := range []string{"2006-01-02", "2006-01-02T15:04:05", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// evaluationState renders an evaluation as a short human-readable state.
func evaluationState(ev rules.Evaluation) string {
	switch {
	case ev.Ruleset == nil:
		return "no match"
	case !ev.Matches:
		return fmt.Sprintf("matched %s, trigger blanked (%s)", ev.Ruleset.Name, strings.Join(ev.Missing, ", "))
	case !ev.Complete:
		return fmt.Sprintf("matched %s, missing %s", ev.Ruleset.Name, strings.Join(ev.Missing, ", "))
	default:
		return fmt.Sprintf("matched %s, complete", ev.Ruleset.Name)
	}
}
