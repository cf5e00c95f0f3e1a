package rules

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the per-vault ruleset definition file.
const FileName = "rules.yaml"

// File is the on-disk shape of rules.yaml. Declaration order in the
// rulesets sequence is evaluation order.
type File struct {
	Rulesets []Ruleset `yaml:"rulesets"`
}

// LoadIssue is a non-fatal problem found while loading ruleset
// definitions. Bad declarations degrade rather than fail the load so one
// typo cannot break evaluation for every document.
type LoadIssue struct {
	Ruleset string
	Field   string
	Message string
}

func (i LoadIssue) String() string {
	if i.Field != "" {
		return fmt.Sprintf("ruleset %q, field %q: %s", i.Ruleset, i.Field, i.Message)
	}
	return fmt.Sprintf("ruleset %q: %s", i.Ruleset, i.Message)
}

// Load loads the ordered ruleset list from a vault's rules.yaml.
// A missing file yields an empty list, not an error.
func Load(vaultPath string) ([]Ruleset, []LoadIssue, error) {
	rulesPath := filepath.Join(vaultPath, FileName)

	data, err := os.ReadFile(rulesPath)
	if os.IsNotExist(err) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	return Parse(data)
}

// Parse decodes ruleset definitions from YAML and reports lint issues.
func Parse(data []byte) ([]Ruleset, []LoadIssue, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	var issues []LoadIssue
	for i := range file.Rulesets {
		rs := &file.Rulesets[i]
		if rs.Name == "" {
			rs.Name = fmt.Sprintf("ruleset %d", i+1)
			issues = append(issues, LoadIssue{Ruleset: rs.Name, Message: "missing name"})
		}
		if len(rs.Match) == 0 {
			issues = append(issues, LoadIssue{Ruleset: rs.Name, Message: "empty match conditions; matches every document"})
		}
		if rs.Rename == "" {
			rs.Rename = RenameNever
		}
		switch rs.Rename {
		case RenameNever, RenameIfUnset, RenameAlways:
		default:
			issues = append(issues, LoadIssue{Ruleset: rs.Name, Message: fmt.Sprintf("unknown rename policy %q; using never", rs.Rename)})
			rs.Rename = RenameNever
		}
		for _, f := range rs.Fields {
			if f.Name == "" {
				issues = append(issues, LoadIssue{Ruleset: rs.Name, Message: "field with no name"})
			}
			if !KnownType(f.Type) {
				issues = append(issues, LoadIssue{
					Ruleset: rs.Name,
					Field:   f.Name,
					Message: fmt.Sprintf("unknown type %q; field treated as never empty", f.Type),
				})
			}
		}
	}

	return file.Rulesets, issues, nil
}

// CreateDefault writes a starter rules.yaml into the vault.
func CreateDefault(vaultPath string) error {
	rulesPath := filepath.Join(vaultPath, FileName)

	defaultRules := `# Shrike ruleset definitions.
#
# Rulesets are evaluated top to bottom; the first whose match conditions
# all hold wins. Match conditions are exact key/value equality against a
# document's frontmatter.
#
# Field types: text, list, date, number, boolean.
# Templates use {field} placeholders; {created} is the note's creation
# time, and date fields accept a format modifier such as
# {date:YYYY-MM-DD hh:mma}.

rulesets:
  - name: meeting
    match:
      type: meeting
    fields:
      - name: attendees
        type: list
        required: true
      - name: date
        type: date
        format: YYYY-MM-DD
        required: true
    title_template: "{attendees} - {date:YYYY-MM-DD}"
    path_template: "Meetings/{date:YYYY}"
    rename: if-unset
    auto_move: true
`

	if err := os.WriteFile(rulesPath, []byte(defaultRules), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", FileName, err)
	}
	return nil
}
