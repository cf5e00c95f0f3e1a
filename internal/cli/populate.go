package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/shrike/internal/atomicfile"
	"github.com/aidanlsb/shrike/internal/parser"
	"github.com/aidanlsb/shrike/internal/rules"
	"github.com/aidanlsb/shrike/internal/ui"
	"github.com/aidanlsb/shrike/internal/vault"
)

var populateDryRun bool

var populateCmd = &cobra.Command{
	Use:   "populate <note>",
	Short: "Fill in a matched note's missing required fields",
	Long: `Evaluates the note against the vault's rulesets. When a ruleset matches
and required fields are absent from the frontmatter, type-appropriate
defaults are appended. The write is atomic: either the whole
frontmatter block is updated or the file is untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		vaultPath := getVaultPath()

		rulesets, warnings, err := loadRulesets(vaultPath)
		if err != nil {
			return handleError(ErrRulesInvalid, err, "Fix rules.yaml and re-run")
		}

		note, err := vault.LoadNote(vaultPath, args[0])
		if err != nil {
			return handleError(ErrNoteNotFound, err, "")
		}
		if note.Err != nil {
			return handleError(ErrNoteInvalid, note.Err, "Fix the note's frontmatter and re-run")
		}

		ev := rules.Evaluate(note.Fields(), rulesets)
		if ev.Ruleset == nil {
			return handleErrorMsg(ErrRulesetNotFound,
				fmt.Sprintf("no ruleset matches %s", note.RelativePath), "")
		}
		if !ev.Matches {
			return handleErrorMsg(ErrNoteInvalid,
				fmt.Sprintf("%s matched %s but its trigger fields are blanked: %v",
					note.RelativePath, ev.Ruleset.Name, ev.Missing),
				"Restore the trigger field values before populating")
		}

		populated, filled := rules.Populate(ev.Ruleset, note.Fields(), time.Now())
		if len(filled) == 0 {
			if jsonOutput {
				outputSuccessWithWarnings(map[string]any{
					"path":   note.RelativePath,
					"filled": []string{},
				}, warnings, nil)
				return nil
			}
			fmt.Println(ui.Info("nothing to populate"))
			return nil
		}

		if !populateDryRun {
			updated, err := parser.AppendFields(note.Content, note.Frontmatter, populated, filled)
			if err != nil {
				return handleError(ErrFileWriteError, err, "")
			}
			if err := atomicfile.WriteFile(note.Path, []byte(updated), 0); err != nil {
				return handleError(ErrFileWriteError, err, "")
			}
		}

		if jsonOutput {
			outputSuccessWithWarnings(map[string]any{
				"path":    note.RelativePath,
				"ruleset": ev.Ruleset.Name,
				"filled":  filled,
				"dry_run": populateDryRun,
			}, warnings, &Meta{Count: len(filled)})
			return nil
		}

		for _, name := range filled {
			fmt.Println(ui.Successf("added %s", name))
		}
		if populateDryRun {
			fmt.Println(ui.Hint("dry run - nothing written"))
		}
		return nil
	},
}

func init() {
	populateCmd.Flags().BoolVar(&populateDryRun, "dry-run", false, "Show what would be added without writing")
	rootCmd.AddCommand(populateCmd)
}
