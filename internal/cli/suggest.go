package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/shrike/internal/paths"
	"github.com/aidanlsb/shrike/internal/prompt"
	"github.com/aidanlsb/shrike/internal/ui"
	"github.com/aidanlsb/shrike/internal/vault"
)

var (
	suggestTemplate string
	suggestShow     bool
)

var suggestCmd = &cobra.Command{
	Use:   "suggest <note>",
	Short: "Generate a free-text suggestion for a note",
	Long: `Renders a prompt template against the note (dotted paths like
{note.title} plus {#each list as item}...{/each} blocks) and sends it
to the configured local inference service. The service is configured in
the [inference] section of the global config.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if suggestTemplate == "" {
			return handleErrorMsg(ErrInvalidInput, "a prompt template is required (--template)", "")
		}

		note, err := vault.LoadNote(getVaultPath(), args[0])
		if err != nil {
			return handleError(ErrNoteNotFound, err, "")
		}
		if note.Err != nil {
			return handleError(ErrNoteInvalid, note.Err, "Fix the note's frontmatter and re-run")
		}

		tmpl, err := os.ReadFile(suggestTemplate)
		if err != nil {
			return handleError(ErrTemplateInvalid, err, "")
		}

		rendered := prompt.Render(string(tmpl), promptData(note))
		if suggestShow {
			if jsonOutput {
				outputSuccess(map[string]any{"prompt": rendered}, nil)
				return nil
			}
			fmt.Println(rendered)
			return nil
		}

		inference := getConfig().Inference
		client := &prompt.Client{Endpoint: inference.Endpoint, Model: inference.Model}

		var spinner *ui.Spinner
		if !jsonOutput {
			spinner = ui.NewSpinner("thinking")
			spinner.Start()
		}
		suggestion, err := client.Generate(cmd.Context(), rendered)
		if spinner != nil {
			spinner.Stop()
		}
		if err != nil {
			return handleError(ErrInferenceUnavailable, err,
				"Check the [inference] endpoint in your config and that the service is running")
		}

		if jsonOutput {
			outputSuccess(map[string]any{
				"path":       note.RelativePath,
				"suggestion": suggestion,
			}, nil)
			return nil
		}
		fmt.Println(suggestion)
		return nil
	},
}

// promptData builds the data tree prompt templates resolve against.
func promptData(note vault.Note) map[string]any {
	return map[string]any{
		"note": map[string]any{
			"path":    note.RelativePath,
			"title":   noteTitle(note),
			"body":    note.Content,
			"fields":  note.Fields(),
			"markers": markerNames(note),
		},
	}
}

func noteTitle(note vault.Note) string {
	return paths.Stem(note.RelativePath)
}

func markerNames(note vault.Note) []any {
	var names []any
	for _, m := range scanNote(note) {
		names = append(names, m.Inner)
	}
	return names
}

func init() {
	suggestCmd.Flags().StringVar(&suggestTemplate, "template", "", "Path to the prompt template file")
	suggestCmd.Flags().BoolVar(&suggestShow, "show-prompt", false, "Print the rendered prompt instead of calling the service")
	rootCmd.AddCommand(suggestCmd)
}
