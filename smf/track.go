package smf

import (
	"fmt"

	"github.com/Cierra-Runis/relocate/scanner"
)

// Track is the decoded event sequence of one MTrk chunk.
type Track struct {
	Events []Event
}

var trackTag = [4]byte{'M', 'T', 'r', 'k'}

func (t *Track) Tag() [4]byte {
	return trackTag
}

// decodeTrack interprets an MTrk payload. base is the payload's
// absolute offset in the input, used for error positions. Running
// status starts absent, is set by explicit channel status bytes,
// cleared by SysEx and escape events, and left alone by meta events.
func decodeTrack(payload []byte, base, chunkIndex, trackIndex int) (*Track, []Anomaly, error) {
	s := scanner.New(payload)
	track := &Track{}
	var anomalies []Anomaly
	var runningStatus byte
	var haveRunningStatus bool

	fail := func(err error) error {
		return &DecodeError{
			Offset: base + s.Position(),
			Chunk:  chunkIndex,
			Track:  trackIndex,
			Err:    err,
		}
	}

	for s.Remaining() > 0 {
		delta, err := s.VarLen()
		if err != nil {
			return nil, nil, fail(err)
		}
		first, err := s.Peek()
		if err != nil {
			return nil, nil, fail(err)
		}

		var body EventBody
		switch {
		case first < 0x80:
			// Data byte in status position: reuse the running status.
			// The byte stays unconsumed, it is the first data byte.
			if !haveRunningStatus {
				return nil, nil, fail(fmt.Errorf("%w: data byte 0x%02X before any status byte",
					ErrMissingStatusByte, first))
			}
			body, err = decodeChannelVoice(s, runningStatus)
		case first == 0xFF:
			s.Next()
			body, err = decodeMeta(s)
		case first == 0xF0:
			s.Next()
			body, err = decodeSysEx(s)
			haveRunningStatus = false
		case first == 0xF7:
			s.Next()
			body, err = decodeEscape(s)
			haveRunningStatus = false
		case first < 0xF0:
			s.Next()
			body, err = decodeChannelVoice(s, first)
			runningStatus = first
			haveRunningStatus = true
		default:
			// 0xF1-0xF6 and 0xF8-0xFE never appear in track data.
			return nil, nil, fail(fmt.Errorf("%w: 0x%02X", ErrInvalidStatusByte, first))
		}
		if err != nil {
			return nil, nil, fail(err)
		}

		track.Events = append(track.Events, Event{Delta: delta, Body: body})

		if isEndOfTrack(body) {
			if rest := s.Remaining(); rest > 0 {
				anomalies = append(anomalies, Anomaly{
					Kind:   AnomalyTrailingDataAfterEndOfTrack,
					Chunk:  chunkIndex,
					Track:  trackIndex,
					Detail: fmt.Sprintf("%v byte(s) ignored", rest),
				})
			}
			break
		}
	}
	return track, anomalies, nil
}

func decodeChannelVoice(s *scanner.Scanner, status byte) (EventBody, error) {
	kind := ChannelVoiceKind(status & 0xF0)
	data, err := s.Take(kind.DataLen())
	if err != nil {
		return nil, err
	}
	return ChannelVoice{
		Kind:    kind,
		Channel: status & 0x0F,
		Data:    append([]byte(nil), data...),
	}, nil
}

func decodeMeta(s *scanner.Scanner) (EventBody, error) {
	metaType, err := s.Next()
	if err != nil {
		return nil, err
	}
	data, err := takeVarLenPrefixed(s)
	if err != nil {
		return nil, err
	}
	return Meta{Type: metaType, Data: data}, nil
}

func decodeSysEx(s *scanner.Scanner) (EventBody, error) {
	data, err := takeVarLenPrefixed(s)
	if err != nil {
		return nil, err
	}
	return SystemExclusive{Data: data}, nil
}

func decodeEscape(s *scanner.Scanner) (EventBody, error) {
	data, err := takeVarLenPrefixed(s)
	if err != nil {
		return nil, err
	}
	return Escape{Data: data}, nil
}

// takeVarLenPrefixed reads a VLQ length and then that many bytes,
// returning a copy so the document owns its payload.
func takeVarLenPrefixed(s *scanner.Scanner) ([]byte, error) {
	length, err := s.VarLen()
	if err != nil {
		return nil, err
	}
	data, err := s.Take(int(length))
	if err != nil {
		return nil, err
	}
	return append([]byte(nil), data...), nil
}

// appendPayload encodes the track's events. Status bytes are always
// written explicitly; omitting them under running status would also
// be conformant but explicit status is the canonical lossless policy.
func (t *Track) appendPayload(b *scanner.Builder) error {
	for i, evt := range t.Events {
		if err := appendEvent(b, evt); err != nil {
			return fmt.Errorf("event %v: %w", i, err)
		}
	}
	return nil
}

func appendEvent(b *scanner.Builder, evt Event) error {
	if err := b.VarLen(evt.Delta); err != nil {
		return outOfRange("delta time", int64(evt.Delta))
	}
	switch body := evt.Body.(type) {
	case ChannelVoice:
		return appendChannelVoice(b, body)
	case SystemExclusive:
		b.Byte(0xF0)
		return appendVarLenPrefixed(b, "system exclusive length", body.Data)
	case Escape:
		b.Byte(0xF7)
		return appendVarLenPrefixed(b, "escape length", body.Data)
	case Meta:
		b.Byte(0xFF)
		b.Byte(body.Type)
		return appendVarLenPrefixed(b, "meta length", body.Data)
	case nil:
		return fmt.Errorf("%w: event has no body", ErrValueOutOfRange)
	}
	return fmt.Errorf("%w: unknown event body %T", ErrValueOutOfRange, evt.Body)
}

func appendChannelVoice(b *scanner.Builder, body ChannelVoice) error {
	if !body.Kind.valid() {
		return outOfRange("channel voice kind", int64(body.Kind))
	}
	if body.Channel > 15 {
		return outOfRange("channel", int64(body.Channel))
	}
	if len(body.Data) != body.Kind.DataLen() {
		return outOfRange(fmt.Sprintf("%v data length", body.Kind), int64(len(body.Data)))
	}
	for _, d := range body.Data {
		if d > 0x7F {
			return outOfRange("data byte", int64(d))
		}
	}
	b.Byte(byte(body.Kind) | body.Channel)
	b.Raw(body.Data)
	return nil
}

func appendVarLenPrefixed(b *scanner.Builder, field string, data []byte) error {
	if uint64(len(data)) > scanner.MaxVarLen {
		return outOfRange(field, int64(len(data)))
	}
	b.VarLen(uint32(len(data)))
	b.Raw(data)
	return nil
}
