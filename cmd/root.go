package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "relocate",
	Short: "Standard MIDI file toolkit",
	Long:  `Reads, inspects and rewrites standard MIDI files byte for byte.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
