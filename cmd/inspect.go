package cmd

import (
	"fmt"

	"github.com/Cierra-Runis/relocate/meta"
	"github.com/Cierra-Runis/relocate/midi"
	"github.com/Cierra-Runis/relocate/smf"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Inspects a midi file",
	Long:  `Inspects a midi file`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		inspect(args[0])
	},
}

// renderBody prefers the interpreted meta form when the payload
// parses, otherwise the raw rendering.
func renderBody(body smf.EventBody) string {
	if m, ok := body.(smf.Meta); ok {
		if msg, err := meta.Parse(m); err == nil {
			return msg.String()
		}
	}
	return body.String()
}

func inspect(path string) {
	f, anomalies, err := midi.ReadMidiFile(path)
	if err != nil {
		panic("Could not inspect: " + err.Error())
	}

	for _, a := range anomalies {
		fmt.Printf("Warning: %v\n", a)
	}
	if header := f.Header(); header != nil {
		fmt.Printf("Format: %v\n", header.Format)
		fmt.Printf("Declared tracks: %v\n", header.TrackCount)
		fmt.Printf("Division: %v\n", header.Division)
	}

	trackNum := 0
	for _, chunk := range f.Chunks {
		switch c := chunk.(type) {
		case *smf.Track:
			fmt.Printf("Track %v: %v events\n", trackNum, len(c.Events))
			var absTicks uint64
			for _, evt := range c.Events {
				absTicks += uint64(evt.Delta)
				fmt.Printf("  @%v %v\n", absTicks, renderBody(evt.Body))
			}
			trackNum += 1
		case *smf.Alien:
			fmt.Printf("Alien chunk: %v\n", c)
		}
	}
}
