package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/shrike/internal/marker"
	"github.com/aidanlsb/shrike/internal/vault"
)

var (
	jumpAt  int
	jumpEnd int
)

var jumpCmd = &cobra.Command{
	Use:   "jump <next|prev> <note>",
	Short: "Find the next or previous marker from a cursor position",
	Long: `Given the current selection ([--at, --end)), prints the marker an
editor should jump to. next picks the first marker starting after the
selection and wraps to the first marker in the note; prev picks the
last marker ending before the selection and wraps to the last.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		direction := args[0]
		if direction != "next" && direction != "prev" {
			return handleErrorMsg(ErrInvalidInput,
				fmt.Sprintf("direction must be next or prev, got %q", direction), "")
		}

		note, err := vault.LoadNote(getVaultPath(), args[1])
		if err != nil {
			return handleError(ErrNoteNotFound, err, "")
		}

		markers := scanNote(note)
		if len(markers) == 0 {
			return handleErrorMsg(ErrNoMarkers,
				fmt.Sprintf("no markers in %s", note.RelativePath), "")
		}

		end := jumpEnd
		if end < jumpAt {
			end = jumpAt
		}
		current := marker.Range{Start: jumpAt, End: end}

		var target *marker.Marker
		if direction == "next" {
			target = marker.Next(markers, current)
		} else {
			target = marker.Prev(markers, current)
		}

		if jsonOutput {
			outputSuccess(markerReport{Start: target.Start, End: target.End, Inner: target.Inner}, nil)
			return nil
		}
		fmt.Printf("%d-%d %s\n", target.Start, target.End, target.Literal())
		return nil
	},
}

func init() {
	jumpCmd.Flags().IntVar(&jumpAt, "at", 0, "Selection start offset")
	jumpCmd.Flags().IntVar(&jumpEnd, "end", 0, "Selection end offset (defaults to --at)")
	rootCmd.AddCommand(jumpCmd)
}
