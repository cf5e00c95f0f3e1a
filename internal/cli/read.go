package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/shrike/internal/rules"
	"github.com/aidanlsb/shrike/internal/ui"
	"github.com/aidanlsb/shrike/internal/vault"
)

var readPlain bool

var readCmd = &cobra.Command{
	Use:   "read <note>",
	Short: "Render a note in the terminal",
	Long: `Renders the note as styled markdown, with a banner showing how the
note evaluates against the vault's rulesets.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		note, err := vault.LoadNote(getVaultPath(), args[0])
		if err != nil {
			return handleError(ErrNoteNotFound, err, "")
		}

		banner := readBanner(note)

		if jsonOutput {
			outputSuccess(map[string]any{
				"path":    note.RelativePath,
				"content": note.Content,
				"fields":  note.Fields(),
				"state":   banner,
			}, nil)
			return nil
		}

		display := ui.NewDisplayContext()
		if banner != "" && display.IsTTY {
			fmt.Println(ui.Header(banner))
		}
		if readPlain || !display.IsTTY {
			fmt.Print(note.Content)
			return nil
		}

		rendered, err := ui.RenderMarkdown(note.Content, display.TermWidth)
		if err != nil {
			// Rendering is display-only; fall back to the raw note.
			fmt.Print(note.Content)
			return nil
		}
		fmt.Print(rendered)
		return nil
	},
}

// readBanner summarizes the note's evaluation for the banner line. A
// vault without usable rulesets, or a note with broken frontmatter,
// still renders; the banner reports what it can.
func readBanner(note vault.Note) string {
	if note.Err != nil {
		return "invalid frontmatter"
	}
	rulesets, _, err := loadRulesets(getVaultPath())
	if err != nil {
		return ""
	}
	return evaluationState(rules.Evaluate(note.Fields(), rulesets))
}

func init() {
	readCmd.Flags().BoolVar(&readPlain, "plain", false, "Print raw markdown without rendering")
	rootCmd.AddCommand(readCmd)
}
