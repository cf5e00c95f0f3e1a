package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/shrike/internal/marker"
	"github.com/aidanlsb/shrike/internal/parser"
	"github.com/aidanlsb/shrike/internal/ui"
	"github.com/aidanlsb/shrike/internal/vault"
)

// markerReport is one marker as exposed through --json.
type markerReport struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Inner string `json:"inner"`
}

var markersCmd = &cobra.Command{
	Use:   "markers <note>",
	Short: "List a note's placeholder markers",
	Long: `Scans the note for <<name>> markers, sorted by offset. Markers inside
fenced code blocks, indented code blocks, or inline code spans are
skipped; when pairs nest, only the innermost marker counts.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		note, err := vault.LoadNote(getVaultPath(), args[0])
		if err != nil {
			return handleError(ErrNoteNotFound, err, "")
		}

		markers := scanNote(note)

		if jsonOutput {
			reports := make([]markerReport, len(markers))
			for i, m := range markers {
				reports[i] = markerReport{Start: m.Start, End: m.End, Inner: m.Inner}
			}
			outputSuccess(reports, &Meta{Count: len(reports)})
			return nil
		}

		if len(markers) == 0 {
			fmt.Println(ui.Hint("no markers"))
			return nil
		}
		tbl := ui.NewTable(3)
		for _, m := range markers {
			tbl.AddRow(fmt.Sprintf("%d-%d", m.Start, m.End), m.Literal(), m.Inner)
		}
		fmt.Print(tbl.String())
		return nil
	},
}

// scanNote runs the marker scanner over a note's content with the
// code-region exclusion predicate derived from its markdown structure.
func scanNote(note vault.Note) []marker.Marker {
	regions := parser.CodeRegions(note.Content)
	return marker.Scan(note.Content, regions.Contains)
}

func init() {
	rootCmd.AddCommand(markersCmd)
}
