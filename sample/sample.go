package sample

import (
	"github.com/Cierra-Runis/relocate/meta"
	"github.com/Cierra-Runis/relocate/smf"
)

const division = 96

// Create builds a small single track document: a four note arpeggio
// in quarter notes, with tempo and time signature set. Handy as a
// known-good input for the other commands.
func Create() *smf.File {
	events := []smf.Event{
		{Delta: 0, Body: smf.Meta{Type: meta.TypeTrackName, Data: []byte("relocate sample")}},
		{Delta: 0, Body: smf.Meta{Type: meta.TypeSetTempo, Data: []byte{0x07, 0xA1, 0x20}}},
		{Delta: 0, Body: smf.Meta{Type: meta.TypeTimeSignature, Data: []byte{4, 2, 24, 8}}},
	}
	for _, note := range []byte{60, 64, 67, 72} {
		events = append(events,
			smf.Event{Delta: 0, Body: smf.ChannelVoice{Kind: smf.NoteOn, Channel: 0, Data: []byte{note, 100}}},
			smf.Event{Delta: division, Body: smf.ChannelVoice{Kind: smf.NoteOff, Channel: 0, Data: []byte{note, 0}}},
		)
	}
	events = append(events, smf.Event{Delta: 0, Body: smf.Meta{Type: meta.TypeEndOfTrack}})

	return &smf.File{Chunks: []smf.Chunk{
		&smf.Header{
			Format:     smf.FormatSingleMultiChannelTrack,
			TrackCount: 1,
			Division:   smf.TicksPerQuarterNote(division),
		},
		&smf.Track{Events: events},
	}}
}

// CreateBytes is Create, already encoded.
func CreateBytes() []byte {
	dat, err := Create().Encode()
	if err != nil {
		panic("Could not encode sample: " + err.Error())
	}
	return dat
}
