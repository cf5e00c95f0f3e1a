package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/shrike/internal/rules"
	"github.com/aidanlsb/shrike/internal/ui"
)

// rulesetReport is one ruleset as exposed through --json.
type rulesetReport struct {
	Name          string         `json:"name"`
	Match         map[string]any `json:"match,omitempty"`
	Fields        []string       `json:"fields,omitempty"`
	Required      []string       `json:"required,omitempty"`
	TitleTemplate string         `json:"title_template,omitempty"`
	PathTemplate  string         `json:"path_template,omitempty"`
	Rename        string         `json:"rename,omitempty"`
}

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the vault's rulesets",
	Long: `Lists every ruleset in rules.yaml in declaration order (the order they
are tried during evaluation), along with any lint issues.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rulesets, warnings, err := loadRulesets(getVaultPath())
		if err != nil {
			return handleError(ErrRulesInvalid, err, "Fix rules.yaml and re-run")
		}

		if jsonOutput {
			reports := make([]rulesetReport, len(rulesets))
			for i, rs := range rulesets {
				reports[i] = buildRulesetReport(rs)
			}
			outputSuccessWithWarnings(reports, warnings, &Meta{Count: len(reports)})
			return nil
		}

		for _, w := range warnings {
			fmt.Println(ui.Warning(w.Message))
		}
		if len(rulesets) == 0 {
			fmt.Println(ui.Hint("no rulesets defined"))
			return nil
		}

		for i, rs := range rulesets {
			fmt.Printf("%d. %s\n", i+1, ui.Header(rs.Name))
			if len(rs.Match) > 0 {
				fmt.Printf("   match: %s\n", formatMatch(rs.Match))
			}
			for _, f := range rs.Fields {
				req := ""
				if f.Required {
					req = " (required)"
				}
				fmt.Printf("   field: %s %s%s\n", f.Name, f.Type, req)
			}
			if rs.TitleTemplate != "" {
				fmt.Printf("   title: %s\n", rs.TitleTemplate)
			}
			if rs.PathTemplate != "" {
				fmt.Printf("   path:  %s\n", rs.PathTemplate)
			}
		}
		return nil
	},
}

func buildRulesetReport(rs rules.Ruleset) rulesetReport {
	report := rulesetReport{
		Name:          rs.Name,
		Match:         rs.Match,
		TitleTemplate: rs.TitleTemplate,
		PathTemplate:  rs.PathTemplate,
		Rename:        string(rs.Rename),
	}
	for _, f := range rs.Fields {
		report.Fields = append(report.Fields, fmt.Sprintf("%s:%s", f.Name, f.Type))
		if f.Required {
			report.Required = append(report.Required, f.Name)
		}
	}
	return report
}

func formatMatch(match map[string]any) string {
	keys := make([]string, 0, len(match))
	for key := range match {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", key, match[key]))
	}
	return strings.Join(parts, ", ")
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}
