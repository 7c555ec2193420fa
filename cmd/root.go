package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tertian",
	Short: "Tertian harmony toolkit",
	Long:  `Spells, renders and serves tertian chords built from shorthand text.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
