package smf

import (
	"encoding/binary"
	"fmt"

	"github.com/Cierra-Runis/relocate/scanner"
)

// Header formats. The raw value is preserved even when it falls
// outside this set; decoding then reports AnomalyUnknownFormat.
const (
	FormatSingleMultiChannelTrack       uint16 = 0
	FormatSimultaneousTracks            uint16 = 1
	FormatSequentiallyIndependentTracks uint16 = 2
)

// SMPTE frames-per-second codes: the upper division byte, as a
// negative two's-complement value.
const (
	SMPTE24 int8 = -24
	SMPTE25 int8 = -25
	SMPTE29 int8 = -29 // 29.97 fps, drop frame
	SMPTE30 int8 = -30
)

// Division is the header's timing field: either TicksPerQuarterNote
// or TimeCode, discriminated by the sign bit of the raw 16-bit value.
type Division interface {
	fmt.Stringer
	division()
}

// TicksPerQuarterNote is metric timing, at most 15 bits.
type TicksPerQuarterNote uint16

func (TicksPerQuarterNote) division() {}

func (t TicksPerQuarterNote) String() string {
	return fmt.Sprintf("%v ticks per quarter note", uint16(t))
}

// TimeCode is SMPTE timing: a negative frames-per-second code and the
// number of ticks in one frame.
type TimeCode struct {
	FramesPerSecond int8
	TicksPerFrame   uint8
}

func (TimeCode) division() {}

func (t TimeCode) String() string {
	label := fmt.Sprintf("code %v", t.FramesPerSecond)
	switch t.FramesPerSecond {
	case SMPTE24:
		label = "24 fps"
	case SMPTE25:
		label = "25 fps"
	case SMPTE29:
		label = "29.97 fps"
	case SMPTE30:
		label = "30 fps"
	}
	return fmt.Sprintf("SMPTE %v, %v ticks per frame", label, t.TicksPerFrame)
}

// Header is the decoded MThd payload.
type Header struct {
	Format     uint16
	TrackCount uint16
	Division   Division
}

var headerTag = [4]byte{'M', 'T', 'h', 'd'}

func (h *Header) Tag() [4]byte {
	return headerTag
}

func (h *Header) String() string {
	return fmt.Sprintf("format %v, %v track(s), %v", h.Format, h.TrackCount, h.Division)
}

const headerPayloadLen = 6

func decodeHeader(payload []byte) (*Header, error) {
	if len(payload) != headerPayloadLen {
		return nil, fmt.Errorf("%w: got %v bytes, want %v",
			ErrInvalidHeaderLength, len(payload), headerPayloadLen)
	}
	return &Header{
		Format:     binary.BigEndian.Uint16(payload[0:2]),
		TrackCount: binary.BigEndian.Uint16(payload[2:4]),
		Division:   divisionFromRaw(binary.BigEndian.Uint16(payload[4:6])),
	}, nil
}

func divisionFromRaw(raw uint16) Division {
	if raw&0x8000 == 0 {
		return TicksPerQuarterNote(raw & 0x7FFF)
	}
	return TimeCode{
		FramesPerSecond: int8(raw >> 8),
		TicksPerFrame:   uint8(raw & 0x00FF),
	}
}

func divisionToRaw(d Division) (uint16, error) {
	switch v := d.(type) {
	case TicksPerQuarterNote:
		if v > 0x7FFF {
			return 0, outOfRange("ticks per quarter note", int64(v))
		}
		return uint16(v), nil
	case TimeCode:
		if v.FramesPerSecond >= 0 {
			return 0, outOfRange("SMPTE frames per second code", int64(v.FramesPerSecond))
		}
		return uint16(uint8(v.FramesPerSecond))<<8 | uint16(v.TicksPerFrame), nil
	case nil:
		return 0, fmt.Errorf("%w: header has no division", ErrValueOutOfRange)
	}
	return 0, fmt.Errorf("%w: %T", ErrUnsupportedDivision, d)
}

func (h *Header) appendPayload(b *scanner.Builder) error {
	raw, err := divisionToRaw(h.Division)
	if err != nil {
		return err
	}
	b.Uint16(h.Format)
	b.Uint16(h.TrackCount)
	b.Uint16(raw)
	return nil
}
