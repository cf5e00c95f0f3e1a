package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/shrike/internal/organize"
	"github.com/aidanlsb/shrike/internal/rules"
	"github.com/aidanlsb/shrike/internal/ui"
	"github.com/aidanlsb/shrike/internal/vault"
)

// noteReport is one note's evaluation, as exposed through --json.
type noteReport struct {
	Path      string   `json:"path"`
	Ruleset   string   `json:"ruleset,omitempty"`
	Matches   bool     `json:"matches"`
	Complete  bool     `json:"complete"`
	Missing   []string `json:"missing,omitempty"`
	Organized bool     `json:"organized"`
	State     string   `json:"state"`
}

var checkCmd = &cobra.Command{
	Use:   "check [note]",
	Short: "Evaluate notes against the vault's rulesets",
	Long: `Evaluates each note's metadata against the rulesets in rules.yaml and
reports which ruleset matches, which required fields are still missing,
and whether the note already sits at its computed destination.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		vaultPath := getVaultPath()

		rulesets, warnings, err := loadRulesets(vaultPath)
		if err != nil {
			return handleError(ErrRulesInvalid, err, "Fix rules.yaml and re-run")
		}

		var reports []noteReport
		collect := func(note vault.Note) {
			if note.Err != nil {
				warnings = append(warnings, Warning{
					Code:    WarnInvalidMetadata,
					Message: note.Err.Error(),
					Path:    note.RelativePath,
				})
				return
			}
			reports = append(reports, buildReport(note, rulesets))
		}

		if len(args) == 1 {
			note, err := vault.LoadNote(vaultPath, args[0])
			if err != nil {
				return handleError(ErrNoteNotFound, err, "")
			}
			collect(note)
		} else {
			err := vault.WalkNotes(vaultPath, func(note vault.Note) error {
				collect(note)
				return nil
			})
			if err != nil {
				return handleError(ErrInternal, err, "")
			}
		}

		if jsonOutput {
			outputSuccessWithWarnings(reports, warnings, &Meta{Count: len(reports)})
			return nil
		}

		for _, w := range warnings {
			if w.Path != "" {
				fmt.Println(ui.Warningf("%s: %s", w.Path, w.Message))
			} else {
				fmt.Println(ui.Warning(w.Message))
			}
		}

		tbl := ui.NewTable(3)
		for _, r := range reports {
			mark := " "
			switch {
			case r.Complete && r.Organized:
				mark = ui.SymbolSuccess
			case r.Complete:
				mark = "→"
			}
			tbl.AddRow(mark, r.Path, r.State)
		}
		fmt.Print(tbl.String())
		fmt.Println(ui.Hint(fmt.Sprintf("%d notes checked", len(reports))))
		return nil
	},
}

func buildReport(note vault.Note, rulesets []rules.Ruleset) noteReport {
	ev := rules.Evaluate(note.Fields(), rulesets)

	report := noteReport{
		Path:     note.RelativePath,
		Matches:  ev.Matches,
		Complete: ev.Complete,
		Missing:  ev.Missing,
		State:    evaluationState(ev),
	}
	if ev.Ruleset != nil {
		report.Ruleset = ev.Ruleset.Name
	}
	if ev.Complete {
		report.Organized = organize.IsOrganized(ev.Ruleset, note.Fields(), noteCreatedAt(note), note.RelativePath)
		if report.Organized {
			report.State += ", organized"
		}
	}
	return report
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
