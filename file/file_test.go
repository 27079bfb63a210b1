package file

import (
	"testing"

	"github.com/Cierra-Runis/relocate/meta"
	"github.com/Cierra-Runis/relocate/smf"
	"github.com/stretchr/testify/assert"
)

func makeTestFile() *smf.File {
	return &smf.File{
		Chunks: []smf.Chunk{
			&smf.Header{
				Format:     smf.FormatSimultaneousTracks,
				TrackCount: 2,
				Division:   smf.TicksPerQuarterNote(96),
			},
			&smf.Track{
				Events: []smf.Event{
					{Delta: 0, Body: smf.Meta{Type: meta.TypeTrackName, Data: []byte("melody")}},
					{Delta: 0, Body: smf.ChannelVoice{Kind: smf.NoteOn, Channel: 0, Data: []byte{60, 100}}},
					{Delta: 96, Body: smf.ChannelVoice{Kind: smf.NoteOff, Channel: 0, Data: []byte{60, 0}}},
					{Delta: 0, Body: smf.Meta{Type: 0x2F}},
				},
			},
			&smf.Track{
				Events: []smf.Event{
					{Delta: 0, Body: smf.SystemExclusive{Data: []byte{0x43, 0x10, 0xF7}}},
					{Delta: 24, Body: smf.Escape{Data: []byte{0xF3, 0x01}}},
					{Delta: 0, Body: smf.Meta{Type: 0x2F}},
				},
			},
			&smf.Alien{RawTag: [4]byte{'X', 'T', 'R', 'A'}, Data: []byte{1, 2, 3}},
		},
	}
}

func TestCreateOverview(t *testing.T) {
	assert := assert.New(t)

	overview := CreateOverview(makeTestFile(), nil)

	assert.True(overview.HasHeader)
	assert.Equal(overview.Format, smf.FormatSimultaneousTracks)
	assert.Equal(overview.DeclaredTracks, uint16(2))
	assert.Equal(overview.Division, "96 ticks per quarter note")
	assert.Equal(overview.NumTracks, 2)
	assert.Equal(overview.NumAlienChunks, 1)
	assert.Equal(overview.NumEvents, 7)
	assert.Empty(overview.Anomalies)
}

func TestCreateOverviewPerTrackCounts(t *testing.T) {
	assert := assert.New(t)

	overview := CreateOverview(makeTestFile(), nil)

	assert.Equal(len(overview.Tracks), 2)

	first := overview.Tracks[0]
	assert.Equal(first.Name, "melody")
	assert.Equal(first.NumEvents, 4)
	assert.Equal(first.ChannelVoice, 2)
	assert.Equal(first.Meta, 2)
	assert.Equal(first.TotalTicks, uint64(96))

	second := overview.Tracks[1]
	assert.Equal(second.Name, "")
	assert.Equal(second.SysEx, 1)
	assert.Equal(second.Escape, 1)
	assert.Equal(second.TotalTicks, uint64(24))
}

func TestCreateOverviewReportsAnomalies(t *testing.T) {
	assert := assert.New(t)

	anomalies := []smf.Anomaly{
		{Kind: smf.AnomalyUnknownFormat, Chunk: -1, Track: -1, Detail: "format 7"},
	}
	overview := CreateOverview(&smf.File{}, anomalies)

	assert.False(overview.HasHeader)
	assert.Equal(overview.NumTracks, 0)
	assert.Equal(len(overview.Anomalies), 1)
	assert.Contains(overview.Anomalies[0], "unknown format")
}

func TestCreateOverviewSurvivesHeaderlessFile(t *testing.T) {
	assert := assert.New(t)

	f := &smf.File{Chunks: []smf.Chunk{
		&smf.Track{Events: []smf.Event{{Delta: 0, Body: smf.Meta{Type: 0x2F}}}},
	}}
	overview := CreateOverview(f, nil)

	assert.False(overview.HasHeader)
	assert.Equal(overview.NumTracks, 1)
	assert.Equal(overview.Division, "")
}
