package smf

import (
	"fmt"
)

// Event is one entry of a track: the tick delta since the previous
// event in the same track, and the event itself.
type Event struct {
	Delta uint32
	Body  EventBody
}

func (e Event) String() string {
	return fmt.Sprintf("+%v %v", e.Delta, e.Body)
}

// EventBody is one of ChannelVoice, SystemExclusive, Meta or Escape.
type EventBody interface {
	fmt.Stringer
	eventBody()
}

// ChannelVoiceKind is the high nibble of a channel message status
// byte.
type ChannelVoiceKind byte

const (
	NoteOff               ChannelVoiceKind = 0x80
	NoteOn                ChannelVoiceKind = 0x90
	PolyphonicKeyPressure ChannelVoiceKind = 0xA0
	ControlChange         ChannelVoiceKind = 0xB0
	ProgramChange         ChannelVoiceKind = 0xC0
	ChannelPressure       ChannelVoiceKind = 0xD0
	PitchBend             ChannelVoiceKind = 0xE0
)

// DataLen returns how many data bytes follow a status byte of this
// kind: one for ProgramChange and ChannelPressure, two for the rest.
func (k ChannelVoiceKind) DataLen() int {
	if k == ProgramChange || k == ChannelPressure {
		return 1
	}
	return 2
}

func (k ChannelVoiceKind) valid() bool {
	return k >= 0x80 && k < 0xF0 && k&0x0F == 0
}

func (k ChannelVoiceKind) String() string {
	switch k {
	case NoteOff:
		return "NoteOff"
	case NoteOn:
		return "NoteOn"
	case PolyphonicKeyPressure:
		return "PolyphonicKeyPressure"
	case ControlChange:
		return "ControlChange"
	case ProgramChange:
		return "ProgramChange"
	case ChannelPressure:
		return "ChannelPressure"
	case PitchBend:
		return "PitchBend"
	}
	return fmt.Sprintf("ChannelVoiceKind(0x%02X)", byte(k))
}

// ChannelVoice is a channel voice or mode message. Data holds the
// message's data bytes, 1 or 2 of them depending on Kind.
type ChannelVoice struct {
	Kind    ChannelVoiceKind
	Channel uint8
	Data    []byte
}

func (ChannelVoice) eventBody() {}

func (c ChannelVoice) String() string {
	return fmt.Sprintf("%v ch %v %v", c.Kind, c.Channel, c.Data)
}

// SystemExclusive is a 0xF0-initiated event. Data holds the payload
// exactly as framed by the event's length field, including the
// terminating 0xF7 when one is present.
type SystemExclusive struct {
	Data []byte
}

func (SystemExclusive) eventBody() {}

// Complete reports whether the payload ends with the 0xF7 terminator.
// An incomplete SysEx is an open fragment expected to be continued by
// a following escape event; fragments are kept as separate events so
// the original event sequence round-trips exactly.
func (s SystemExclusive) Complete() bool {
	return len(s.Data) > 0 && s.Data[len(s.Data)-1] == 0xF7
}

func (s SystemExclusive) String() string {
	state := "fragment"
	if s.Complete() {
		state = "complete"
	}
	return fmt.Sprintf("SysEx (%v bytes, %v)", len(s.Data), state)
}

// Meta is a 0xFF-prefixed file-structural event. Type 0x2F with empty
// Data is the canonical end-of-track marker.
type Meta struct {
	Type byte
	Data []byte
}

func (Meta) eventBody() {}

func (m Meta) String() string {
	if len(m.Data) == 0 {
		return fmt.Sprintf("Meta 0x%02X", m.Type)
	}
	return fmt.Sprintf("Meta 0x%02X % X", m.Type, m.Data)
}

// Escape is a bare 0xF7 event injecting raw bytes into the stream,
// typically the continuation of a SysEx fragment.
type Escape struct {
	Data []byte
}

func (Escape) eventBody() {}

func (e Escape) String() string {
	return fmt.Sprintf("Escape (%v bytes)", len(e.Data))
}

// metaEndOfTrack terminates a track's event stream.
const metaEndOfTrack byte = 0x2F

// isEndOfTrack reports whether b is the canonical track terminator.
func isEndOfTrack(b EventBody) bool {
	m, ok := b.(Meta)
	return ok && m.Type == metaEndOfTrack && len(m.Data) == 0
}
