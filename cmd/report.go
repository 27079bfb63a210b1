package cmd

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/Cierra-Runis/relocate/constants"
	"github.com/Cierra-Runis/relocate/file"
	"github.com/Cierra-Runis/relocate/meta"
	"github.com/Cierra-Runis/relocate/midi"
	"github.com/Cierra-Runis/relocate/smf"
	"github.com/Cierra-Runis/relocate/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Creates a report over a directory of midi files",
	Long:  `Creates a report over a directory of midi files`,
	Run: func(cmd *cobra.Command, args []string) {
		var dir string
		var maxNum int
		if len(args) >= 1 {
			dir = args[0]
		} else {
			dir = constants.GetMediaDir()
		}
		if len(args) == 2 {
			arg2, err := strconv.Atoi(args[1])
			if err != nil {
				panic(err)
			}
			maxNum = arg2
		}

		report(dir, maxNum)
	},
}

type dirReport struct {
	numFiles        int64
	numFailed       int64
	numAnomalous    int64
	numTracks       int64
	numAlien        int64
	numChannelVoice int64
	numMeta         int64
	numSysEx        int64
	numEscape       int64
	eventsPerFile   []int64
	divisions       map[string]int64
	metaByType      map[byte]int64
}

func analyzeDir(dir string, maxNum int) dirReport {
	var report dirReport
	report.divisions = make(map[string]int64)
	report.metaByType = make(map[byte]int64)

	for _, path := range util.GatherAllMidiPaths(dir, maxNum) {
		report.numFiles += 1
		f, anomalies, err := midi.ReadMidiFile(path)
		if err != nil {
			fmt.Printf("Skipping %v: %v\n", path, err)
			report.numFailed += 1
			continue
		}
		if len(anomalies) > 0 {
			report.numAnomalous += 1
		}

		overview := file.CreateOverview(f, anomalies)
		report.numTracks += int64(overview.NumTracks)
		report.numAlien += int64(overview.NumAlienChunks)
		report.eventsPerFile = append(report.eventsPerFile, int64(overview.NumEvents))
		report.divisions[overview.Division] += 1
		for _, track := range overview.Tracks {
			report.numChannelVoice += int64(track.ChannelVoice)
			report.numMeta += int64(track.Meta)
			report.numSysEx += int64(track.SysEx)
			report.numEscape += int64(track.Escape)
		}

		for _, track := range f.Tracks() {
			for _, evt := range track.Events {
				if m, ok := evt.Body.(smf.Meta); ok {
					report.metaByType[m.Type] += 1
				}
			}
		}
	}

	return report
}

func report(dir string, maxNum int) {
	dirReport := analyzeDir(dir, maxNum)
	fmt.Printf("dirReport.numFiles: %v\n", dirReport.numFiles)
	fmt.Printf("dirReport.numFailed: %v\n", dirReport.numFailed)
	fmt.Printf("dirReport.numAnomalous: %v\n", dirReport.numAnomalous)
	fmt.Printf("dirReport.numTracks: %v\n", dirReport.numTracks)
	fmt.Printf("dirReport.numAlien: %v\n", dirReport.numAlien)
	fmt.Printf("dirReport.numChannelVoice: %v\n", dirReport.numChannelVoice)
	fmt.Printf("dirReport.numMeta: %v\n", dirReport.numMeta)
	fmt.Printf("dirReport.numSysEx: %v\n", dirReport.numSysEx)
	fmt.Printf("dirReport.numEscape: %v\n", dirReport.numEscape)
	fmt.Printf("total events: %v\n", util.Sum(dirReport.eventsPerFile))
	fmt.Printf("files with at least one event: %v\n", len(util.FilterZeros(dirReport.eventsPerFile)))

	divisions := util.GetKeys(dirReport.divisions)
	sort.Strings(divisions)
	for _, d := range divisions {
		fmt.Printf("division %q: %v\n", d, dirReport.divisions[d])
	}

	types := util.GetKeys(dirReport.metaByType)
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	for _, t := range types {
		fmt.Printf("meta 0x%02X (%v): %v\n", t, meta.TypeName(t), dirReport.metaByType[t])
	}
}
