package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/tertian/chord"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(notesCmd)
}

var notesCmd = &cobra.Command{
	Use:   "notes",
	Short: "Spells the notes of each chord",
	Long:  `Spells the notes of each shorthand chord or polychord argument.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			panic("Need at least 1 shorthand chord...")
		}
		for _, arg := range args {
			printNotes(arg)
		}
	},
}

func printNotes(shorthand string) {
	// polychord halves are written upper|lower
	if strings.Contains(shorthand, "|") {
		p, err := chord.PolyChordFromShorthand(shorthand)
		if err != nil {
			fmt.Printf("Skipping %v because: %v\n", shorthand, err)
			return
		}
		fmt.Printf("%v: %v\n", shorthand, formatNotes(p.Notes()))
		return
	}

	c, err := chord.FromShorthand(shorthand)
	if err != nil {
		fmt.Printf("Skipping %v because: %v\n", shorthand, err)
		return
	}
	fmt.Printf("%v: %v\n", shorthand, formatNotes(c.Notes()))
}

func formatNotes(notes []chord.Note) string {
	parts := make([]string, 0, len(notes))
	for _, n := range notes {
		parts = append(parts, n.String())
	}
	return strings.Join(parts, " ")
}
