package midi

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Cierra-Runis/relocate/smf"
	"github.com/stretchr/testify/assert"
)

func TestWriteThenReadMidiFile(t *testing.T) {
	assert := assert.New(t)

	original := &smf.File{Chunks: []smf.Chunk{
		&smf.Header{
			Format:     smf.FormatSingleMultiChannelTrack,
			TrackCount: 1,
			Division:   smf.TicksPerQuarterNote(480),
		},
		&smf.Track{Events: []smf.Event{
			{Delta: 0, Body: smf.ChannelVoice{Kind: smf.NoteOn, Channel: 3, Data: []byte{64, 90}}},
			{Delta: 480, Body: smf.ChannelVoice{Kind: smf.NoteOff, Channel: 3, Data: []byte{64, 0}}},
			{Delta: 0, Body: smf.Meta{Type: 0x2F}},
		}},
	}}

	path := filepath.Join(t.TempDir(), "out.mid")
	assert.NoError(WriteMidiFile(path, original))

	decoded, anomalies, err := ReadMidiFile(path)
	assert.NoError(err)
	assert.Empty(anomalies)
	assert.Equal(decoded, original)
}

func TestReadMidiFileMissingPath(t *testing.T) {
	assert := assert.New(t)

	_, _, err := ReadMidiFile(filepath.Join(t.TempDir(), "nope.mid"))
	assert.Error(err)
	assert.Contains(err.Error(), "reading midi file")
}

func TestReadMidiFileGarbage(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "garbage.mid")
	assert.NoError(os.WriteFile(path, []byte{'M', 'T', 'h', 'd', 0, 0}, 0644))

	_, _, err := ReadMidiFile(path)
	assert.Error(err)
	assert.Contains(err.Error(), "parsing midi file")
}

func TestWriteMidiFileRejectsBrokenDocument(t *testing.T) {
	assert := assert.New(t)

	broken := &smf.File{Chunks: []smf.Chunk{
		&smf.Header{Format: 0, TrackCount: 1, Division: nil},
	}}
	err := WriteMidiFile(filepath.Join(t.TempDir(), "broken.mid"), broken)
	assert.Error(err)
	assert.Contains(err.Error(), "encoding midi file")
}
