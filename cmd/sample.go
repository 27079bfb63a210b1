package cmd

import (
	"fmt"

	"github.com/Cierra-Runis/relocate/midi"
	"github.com/Cierra-Runis/relocate/sample"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(sampleCmd)
}

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Writes a small sample midi file",
	Long:  `Writes a small sample midi file`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		WriteSample(args[0])
	},
}

// WriteSample writes the built in sample document to path.
func WriteSample(path string) {
	if err := midi.WriteMidiFile(path, sample.Create()); err != nil {
		panic("Could not write sample: " + err.Error())
	}
	fmt.Printf("Wrote sample to %v\n", path)
}
