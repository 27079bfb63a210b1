package meta

import (
	"testing"

	"github.com/Cierra-Runis/relocate/smf"
	"github.com/stretchr/testify/assert"
)

func TestParsesSetTempo(t *testing.T) {
	msg, err := Parse(smf.Meta{Type: 0x51, Data: []byte{0x07, 0xA1, 0x20}})

	assert := assert.New(t)
	assert.Nil(err)

	tempo := msg.(SetTempo)
	assert.Equal(tempo, SetTempo(500000))
	assert.Equal(tempo.BPM(), 120.0)
	assert.Equal(tempo.String(), "tempo 500000 us per quarter note (120.00 bpm)")
}

func TestParsesTimeSignature(t *testing.T) {
	msg, err := Parse(smf.Meta{Type: 0x58, Data: []byte{6, 3, 24, 8}})

	assert := assert.New(t)
	assert.Nil(err)

	ts := msg.(TimeSignature)
	assert.Equal(ts.Numerator, uint8(6))
	assert.Equal(ts.Denominator(), 8)
	assert.Equal(ts.String(), "time signature 6/8 (24 clocks per click, 8 thirty-seconds per quarter)")
}

func TestParsesKeySignature(t *testing.T) {
	assert := assert.New(t)

	msg, err := Parse(smf.Meta{Type: 0x59, Data: []byte{0xFE, 0x01}})
	assert.Nil(err)
	assert.Equal(msg, KeySignature{SharpsFlats: -2, Minor: true})
	assert.Equal(msg.String(), "key signature 2 flats, minor")

	msg, err = Parse(smf.Meta{Type: 0x59, Data: []byte{0x01, 0x00}})
	assert.Nil(err)
	assert.Equal(msg.String(), "key signature 1 sharp, major")
}

func TestParsesTextFamily(t *testing.T) {
	msg, err := Parse(smf.Meta{Type: 0x03, Data: []byte("piano")})

	assert := assert.New(t)
	assert.Nil(err)
	assert.Equal(msg, Text{Type: 0x03, Text: "piano"})
	assert.Equal(msg.String(), `track name "piano"`)
}

func TestParsesSequenceNumber(t *testing.T) {
	msg, err := Parse(smf.Meta{Type: 0x00, Data: []byte{0x00, 0x07}})

	assert := assert.New(t)
	assert.Nil(err)
	assert.Equal(msg, SequenceNumber(7))
}

func TestEndOfTrackToleratesAnyPayload(t *testing.T) {
	assert := assert.New(t)

	msg, err := Parse(smf.Meta{Type: 0x2F})
	assert.Nil(err)
	assert.Equal(msg, EndOfTrack{})

	// some encoders write junk here; keep reading
	msg, err = Parse(smf.Meta{Type: 0x2F, Data: []byte{0x00}})
	assert.Nil(err)
	assert.Equal(msg, EndOfTrack{})
}

func TestMalformedKnownTypesError(t *testing.T) {
	assert := assert.New(t)

	_, err := Parse(smf.Meta{Type: 0x51, Data: []byte{0x07, 0xA1}})
	assert.NotNil(err)
	assert.Contains(err.Error(), "set tempo needs 3")

	_, err = Parse(smf.Meta{Type: 0x58, Data: []byte{4}})
	assert.NotNil(err)
}

func TestUnknownTypesPassThrough(t *testing.T) {
	msg, err := Parse(smf.Meta{Type: 0x60, Data: []byte{1, 2, 3}})

	assert := assert.New(t)
	assert.Nil(err)
	assert.Equal(msg, Unknown{Type: 0x60, Data: []byte{1, 2, 3}})
	assert.Equal(msg.String(), "meta 0x60 (3 bytes)")
}

func TestParsesSMPTEOffset(t *testing.T) {
	msg, err := Parse(smf.Meta{Type: 0x54, Data: []byte{1, 2, 3, 4, 5}})

	assert := assert.New(t)
	assert.Nil(err)
	assert.Equal(msg, SMPTEOffset{Hour: 1, Minute: 2, Second: 3, Frame: 4, SubFrame: 5})
	assert.Equal(msg.String(), "SMPTE offset 01:02:03 4.5")
}

func TestTypeNames(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(TypeName(0x51), "set tempo")
	assert.Equal(TypeName(0x2F), "end of track")
	assert.Equal(TypeName(0x61), "meta 0x61")
}
