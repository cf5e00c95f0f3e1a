package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/shrike/internal/index"
	"github.com/aidanlsb/shrike/internal/rules"
	"github.com/aidanlsb/shrike/internal/ui"
	"github.com/aidanlsb/shrike/internal/vault"
)

var statusRefresh bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show cached evaluation results for the whole vault",
	Long: `Shows the per-note evaluation results stored in the vault index.
With --refresh, the vault is re-scanned and the index rebuilt first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		vaultPath := getVaultPath()

		db, err := index.Open(vaultPath)
		if err != nil {
			return handleError(ErrDatabaseError, err, "")
		}
		defer db.Close()

		var warnings []Warning
		if statusRefresh {
			warnings, err = refreshIndex(vaultPath, db)
			if err != nil {
				return handleError(ErrDatabaseError, err, "")
			}
		}

		statuses, err := db.All()
		if err != nil {
			return handleError(ErrDatabaseError, err, "")
		}

		if jsonOutput {
			outputSuccessWithWarnings(statuses, warnings, &Meta{Count: len(statuses)})
			return nil
		}

		for _, w := range warnings {
			fmt.Println(ui.Warningf("%s: %s", w.Path, w.Message))
		}
		if len(statuses) == 0 {
			fmt.Println(ui.Hint("index is empty - run 'shk status --refresh'"))
			return nil
		}

		tbl := ui.NewTable(3)
		var complete int
		for _, s := range statuses {
			state := "no match"
			switch {
			case s.Complete:
				state = fmt.Sprintf("%s complete", s.Ruleset)
				complete++
			case s.Matches:
				state = fmt.Sprintf("%s missing %v", s.Ruleset, s.Missing)
			case s.Ruleset != "":
				state = fmt.Sprintf("%s trigger blanked", s.Ruleset)
			}
			tbl.AddRow(s.Path, state, s.EvaluatedAt.Format("2006-01-02 15:04"))
		}
		fmt.Print(tbl.String())
		fmt.Println(ui.Hint(fmt.Sprintf("%d notes, %d complete", len(statuses), complete)))
		return nil
	},
}

// refreshIndex re-evaluates every note and rebuilds the index in one
// transaction.
func refreshIndex(vaultPath string, db *index.Database) ([]Warning, error) {
	rulesets, warnings, err := loadRulesets(vaultPath)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	var statuses []index.NoteStatus
	err = vault.WalkNotes(vaultPath, func(note vault.Note) error {
		if note.Err != nil {
			warnings = append(warnings, Warning{
				Code:    WarnInvalidMetadata,
				Message: note.Err.Error(),
				Path:    note.RelativePath,
			})
			return nil
		}

		ev := rules.Evaluate(note.Fields(), rulesets)
		status := index.NoteStatus{
			Path:        note.RelativePath,
			Matches:     ev.Matches,
			Complete:    ev.Complete,
			Missing:     ev.Missing,
			EvaluatedAt: now,
		}
		if ev.Ruleset != nil {
			status.Ruleset = ev.Ruleset.Name
		}
		statuses = append(statuses, status)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return warnings, db.Rebuild(statuses)
}

func init() {
	statusCmd.Flags().BoolVar(&statusRefresh, "refresh", false, "Re-scan the vault and rebuild the index")
	rootCmd.AddCommand(statusCmd)
}
