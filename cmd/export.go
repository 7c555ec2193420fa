package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jsphweid/tertian/chord"
	"github.com/jsphweid/tertian/constants"
	"github.com/jsphweid/tertian/midi"
	"github.com/spf13/cobra"
)

var (
	exportOut    string
	exportOctave int
)

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output .mid path (default: a random name)")
	exportCmd.Flags().IntVar(&exportOctave, "octave", constants.DefaultOctave, "octave register for chord roots")
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Writes chords to a MIDI file",
	Long:  `Writes each shorthand chord argument as one bar of a MIDI file.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			panic("Need at least 1 shorthand chord...")
		}
		export(args)
	},
}

func export(shorthands []string) {
	var chords []chord.Chord
	for _, s := range shorthands {
		c, err := chord.FromShorthand(s)
		if err != nil {
			panic("Could not parse " + s + " because: " + err.Error())
		}
		chords = append(chords, c)
	}

	out := exportOut
	if out == "" {
		out = uuid.New().String() + ".mid"
	}

	if err := midi.WriteChordFile(out, chords, exportOctave); err != nil {
		panic("Could not write midi file because: " + err.Error())
	}
	fmt.Printf("Wrote %v chords to %v\n", len(chords), out)
}
