// Package meta interprets the payloads of SMF meta events. The codec
// itself treats a meta event as an opaque (type, data) pair; this
// package gives the well-known types a readable, structured view.
package meta

import (
	"encoding/binary"
	"fmt"

	"github.com/Cierra-Runis/relocate/smf"
)

const (
	TypeSequenceNumber    byte = 0x00
	TypeText              byte = 0x01
	TypeCopyright         byte = 0x02
	TypeTrackName         byte = 0x03
	TypeInstrumentName    byte = 0x04
	TypeLyric             byte = 0x05
	TypeMarker            byte = 0x06
	TypeCuePoint          byte = 0x07
	TypeProgramName       byte = 0x08
	TypeDeviceName        byte = 0x09
	TypeChannelPrefix     byte = 0x20
	TypePort              byte = 0x21
	TypeEndOfTrack        byte = 0x2F
	TypeSetTempo          byte = 0x51
	TypeSMPTEOffset       byte = 0x54
	TypeTimeSignature     byte = 0x58
	TypeKeySignature      byte = 0x59
	TypeSequencerSpecific byte = 0x7F
)

// Message is the interpreted form of one meta event.
type Message interface {
	fmt.Stringer
	metaMessage()
}

type SequenceNumber uint16

func (SequenceNumber) metaMessage() {}

func (s SequenceNumber) String() string {
	return fmt.Sprintf("sequence number %v", uint16(s))
}

// Text covers the whole 0x01-0x09 text family; Type tells the flavors
// apart.
type Text struct {
	Type byte
	Text string
}

func (Text) metaMessage() {}

func (t Text) String() string {
	return fmt.Sprintf("%v %q", TypeName(t.Type), t.Text)
}

type ChannelPrefix uint8

func (ChannelPrefix) metaMessage() {}

func (c ChannelPrefix) String() string {
	return fmt.Sprintf("channel prefix %v", uint8(c))
}

type Port uint8

func (Port) metaMessage() {}

func (p Port) String() string {
	return fmt.Sprintf("port %v", uint8(p))
}

type EndOfTrack struct{}

func (EndOfTrack) metaMessage() {}

func (EndOfTrack) String() string {
	return "end of track"
}

// SetTempo is the tempo in microseconds per quarter note.
type SetTempo uint32

func (SetTempo) metaMessage() {}

func (t SetTempo) BPM() float64 {
	return 60_000_000 / float64(t)
}

func (t SetTempo) String() string {
	return fmt.Sprintf("tempo %v us per quarter note (%.2f bpm)", uint32(t), t.BPM())
}

type SMPTEOffset struct {
	Hour     uint8
	Minute   uint8
	Second   uint8
	Frame    uint8
	SubFrame uint8
}

func (SMPTEOffset) metaMessage() {}

func (o SMPTEOffset) String() string {
	return fmt.Sprintf("SMPTE offset %02d:%02d:%02d %v.%v",
		o.Hour, o.Minute, o.Second, o.Frame, o.SubFrame)
}

// TimeSignature carries the raw header-file fields; the denominator
// is stored as a power of two.
type TimeSignature struct {
	Numerator                   uint8
	DenominatorPow2             uint8
	ClocksPerClick              uint8
	ThirtySecondNotesPerQuarter uint8
}

func (TimeSignature) metaMessage() {}

func (ts TimeSignature) Denominator() int {
	return 1 << ts.DenominatorPow2
}

func (ts TimeSignature) String() string {
	return fmt.Sprintf("time signature %v/%v (%v clocks per click, %v thirty-seconds per quarter)",
		ts.Numerator, ts.Denominator(), ts.ClocksPerClick, ts.ThirtySecondNotesPerQuarter)
}

// KeySignature counts sharps (positive) or flats (negative).
type KeySignature struct {
	SharpsFlats int8
	Minor       bool
}

func (KeySignature) metaMessage() {}

func (k KeySignature) String() string {
	accidentals := "no accidentals"
	switch {
	case k.SharpsFlats == 1:
		accidentals = "1 sharp"
	case k.SharpsFlats > 1:
		accidentals = fmt.Sprintf("%v sharps", k.SharpsFlats)
	case k.SharpsFlats == -1:
		accidentals = "1 flat"
	case k.SharpsFlats < -1:
		accidentals = fmt.Sprintf("%v flats", -k.SharpsFlats)
	}
	mode := "major"
	if k.Minor {
		mode = "minor"
	}
	return fmt.Sprintf("key signature %v, %v", accidentals, mode)
}

type SequencerSpecific []byte

func (SequencerSpecific) metaMessage() {}

func (s SequencerSpecific) String() string {
	return fmt.Sprintf("sequencer specific (%v bytes)", len(s))
}

// Unknown carries a meta type this package has no view for.
type Unknown struct {
	Type byte
	Data []byte
}

func (Unknown) metaMessage() {}

func (u Unknown) String() string {
	return fmt.Sprintf("meta 0x%02X (%v bytes)", u.Type, len(u.Data))
}

func needLen(m smf.Meta, want int) error {
	if len(m.Data) != want {
		return fmt.Errorf("%v needs %v data byte(s), got %v",
			TypeName(m.Type), want, len(m.Data))
	}
	return nil
}

// Parse interprets a meta event. Known types with malformed payloads
// return an error so callers can fall back to the raw form; types
// this package does not know come back as Unknown, never as an error.
func Parse(m smf.Meta) (Message, error) {
	switch m.Type {
	case TypeSequenceNumber:
		if err := needLen(m, 2); err != nil {
			return nil, err
		}
		return SequenceNumber(binary.BigEndian.Uint16(m.Data)), nil
	case TypeText, TypeCopyright, TypeTrackName, TypeInstrumentName,
		TypeLyric, TypeMarker, TypeCuePoint, TypeProgramName, TypeDeviceName:
		return Text{Type: m.Type, Text: string(m.Data)}, nil
	case TypeChannelPrefix:
		if err := needLen(m, 1); err != nil {
			return nil, err
		}
		return ChannelPrefix(m.Data[0]), nil
	case TypePort:
		if err := needLen(m, 1); err != nil {
			return nil, err
		}
		return Port(m.Data[0]), nil
	case TypeEndOfTrack:
		// tolerated regardless of payload; real files sometimes get
		// the length wrong here
		return EndOfTrack{}, nil
	case TypeSetTempo:
		if err := needLen(m, 3); err != nil {
			return nil, err
		}
		return SetTempo(uint32(m.Data[0])<<16 | uint32(m.Data[1])<<8 | uint32(m.Data[2])), nil
	case TypeSMPTEOffset:
		if err := needLen(m, 5); err != nil {
			return nil, err
		}
		return SMPTEOffset{
			Hour:     m.Data[0],
			Minute:   m.Data[1],
			Second:   m.Data[2],
			Frame:    m.Data[3],
			SubFrame: m.Data[4],
		}, nil
	case TypeTimeSignature:
		if err := needLen(m, 4); err != nil {
			return nil, err
		}
		return TimeSignature{
			Numerator:                   m.Data[0],
			DenominatorPow2:             m.Data[1],
			ClocksPerClick:              m.Data[2],
			ThirtySecondNotesPerQuarter: m.Data[3],
		}, nil
	case TypeKeySignature:
		if err := needLen(m, 2); err != nil {
			return nil, err
		}
		return KeySignature{
			SharpsFlats: int8(m.Data[0]),
			Minor:       m.Data[1] != 0,
		}, nil
	case TypeSequencerSpecific:
		return SequencerSpecific(m.Data), nil
	}
	return Unknown{Type: m.Type, Data: m.Data}, nil
}

// TypeName returns a short label for a meta type byte.
func TypeName(t byte) string {
	switch t {
	case TypeSequenceNumber:
		return "sequence number"
	case TypeText:
		return "text"
	case TypeCopyright:
		return "copyright"
	case TypeTrackName:
		return "track name"
	case TypeInstrumentName:
		return "instrument name"
	case TypeLyric:
		return "lyric"
	case TypeMarker:
		return "marker"
	case TypeCuePoint:
		return "cue point"
	case TypeProgramName:
		return "program name"
	case TypeDeviceName:
		return "device name"
	case TypeChannelPrefix:
		return "channel prefix"
	case TypePort:
		return "port"
	case TypeEndOfTrack:
		return "end of track"
	case TypeSetTempo:
		return "set tempo"
	case TypeSMPTEOffset:
		return "SMPTE offset"
	case TypeTimeSignature:
		return "time signature"
	case TypeKeySignature:
		return "key signature"
	case TypeSequencerSpecific:
		return "sequencer specific"
	}
	return fmt.Sprintf("meta 0x%02X", t)
}
