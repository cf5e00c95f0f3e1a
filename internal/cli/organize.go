package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/shrike/internal/organize"
	"github.com/aidanlsb/shrike/internal/rules"
	"github.com/aidanlsb/shrike/internal/ui"
	"github.com/aidanlsb/shrike/internal/vault"
)

var organizeDryRun bool

var organizeCmd = &cobra.Command{
	Use:   "organize <note>",
	Short: "Move a note to the destination its ruleset computes",
	Long: `Resolves the note's destination from its ruleset's title and path
templates, creates missing destination directories, picks a
collision-free filename, and moves the note. The move only happens once
the matched ruleset is complete; an ancestor that exists as a file
aborts the operation.`,
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
		if !ev.Complete {
			return handleErrorMsg(ErrNotComplete,
				fmt.Sprintf("%s is not complete: missing %v", note.RelativePath, ev.Missing),
				"Run 'shk populate' to fill in defaults first")
		}

		createdAt := noteCreatedAt(note)
		dest, err := organize.ResolveDestination(ev.Ruleset, note.Fields(), createdAt)
		if err != nil {
			return handleError(ErrNoDestination, err, "")
		}

		target := organize.TargetRelPath(ev.Ruleset, dest, note.RelativePath)
		if target == note.RelativePath {
			if jsonOutput {
				outputSuccessWithWarnings(map[string]any{
					"path":  note.RelativePath,
					"moved": false,
				}, append(warnings, Warning{Code: WarnAlreadyThere, Message: "note is already organized", Path: note.RelativePath}), nil)
				return nil
			}
			fmt.Println(ui.Info("already organized"))
			return nil
		}

		if organizeDryRun {
			if jsonOutput {
				outputSuccessWithWarnings(map[string]any{
					"path":    note.RelativePath,
					"target":  target,
					"moved":   false,
					"dry_run": true,
				}, warnings, nil)
				return nil
			}
			fmt.Printf("%s → %s %s\n", note.RelativePath, ui.FilePath(target), ui.Hint("(dry run)"))
			return nil
		}

		storage := organize.NewStorage(vaultPath)
		final, err := organize.Move(storage, note.RelativePath, target)
		if err != nil {
			return handleError(ErrMoveFailed, err, "")
		}

		if jsonOutput {
			outputSuccessWithWarnings(map[string]any{
				"path":   note.RelativePath,
				"target": final,
				"moved":  true,
			}, warnings, nil)
			return nil
		}
		fmt.Println(ui.Successf("moved to %s", ui.FilePath(final)))
		return nil
	},
}

func init() {
	organizeCmd.Flags().BoolVar(&organizeDryRun, "dry-run", false, "Show the destination without moving")
	rootCmd.AddCommand(organizeCmd)
}
