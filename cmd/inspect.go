package cmd

import (
	"fmt"

	"github.com/jsphweid/tertian/midi"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Inspects a MIDI file",
	Long:  `Inspects a MIDI file and prints every note it starts.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		inspect(args[0])
	},
}

func inspect(path string) {
	parsed, err := midi.ReadMidiFile(path)
	if err != nil {
		panic("Could not read midi file because: " + err.Error())
	}
	for _, name := range midi.FileNoteNames(parsed) {
		fmt.Printf("%v\n", name)
	}
}
