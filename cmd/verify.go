package cmd

import (
	"bytes"
	"fmt"

	"github.com/Cierra-Runis/relocate/smf"
	"github.com/Cierra-Runis/relocate/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(verifyCmd)
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verifies a midi file round trips byte for byte",
	Long:  `Verifies a midi file round trips byte for byte`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		Verify(args[0])
	},
}

// Verify decodes path, re-encodes the document and panics if the
// bytes differ.
func Verify(path string) {
	original := util.ReadFileOrPanic(path)
	f, anomalies, err := smf.Decode(original)
	if err != nil {
		panic("Could not decode: " + err.Error())
	}
	for _, a := range anomalies {
		fmt.Printf("Warning: %v\n", a)
	}

	encoded, err := f.Encode()
	if err != nil {
		panic("Could not re-encode: " + err.Error())
	}
	if !bytes.Equal(original, encoded) {
		offset := util.Min(len(original), len(encoded))
		for i := 0; i < offset; i++ {
			if original[i] != encoded[i] {
				offset = i
				break
			}
		}
		panic(fmt.Sprintf("Round trip mismatch at byte %v", offset))
	}
	fmt.Printf("OK: %v byte(s) round-tripped\n", len(encoded))
}
