package smf

import (
	"errors"
	"fmt"
	"math"

	"github.com/Cierra-Runis/relocate/scanner"
)

// Chunk is one tagged, length-prefixed block of an SMF file: *Header,
// *Track or *Alien.
type Chunk interface {
	// Tag returns the chunk's 4-byte type tag.
	Tag() [4]byte
	appendPayload(b *scanner.Builder) error
}

// Alien preserves a chunk whose tag this codec does not interpret.
// Unrecognized chunk types are common in the wild and round-trip
// verbatim rather than failing.
type Alien struct {
	RawTag [4]byte
	Data   []byte
}

func (a *Alien) Tag() [4]byte {
	return a.RawTag
}

func (a *Alien) String() string {
	return fmt.Sprintf("%q, %v byte(s)", a.RawTag[:], len(a.Data))
}

func (a *Alien) appendPayload(b *scanner.Builder) error {
	b.Raw(a.Data)
	return nil
}

// decodeChunk frames and interprets the next chunk. Sub-parsing is
// bounded to the declared payload length, so a payload codec can
// never desynchronize the outer scanner.
func decodeChunk(s *scanner.Scanner, chunkIndex, trackIndex int) (Chunk, []Anomaly, error) {
	fail := func(err error) error {
		return &DecodeError{Offset: s.Position(), Chunk: chunkIndex, Track: -1, Err: err}
	}

	rawTag, err := s.Take(4)
	if err != nil {
		return nil, nil, fail(fmt.Errorf("chunk tag: %w", err))
	}
	var tag [4]byte
	copy(tag[:], rawTag)

	length, err := s.Uint32()
	if err != nil {
		return nil, nil, fail(fmt.Errorf("chunk length: %w", err))
	}
	payloadStart := s.Position()
	payload, err := s.Take(int(length))
	if err != nil {
		return nil, nil, fail(fmt.Errorf("chunk payload: %w", err))
	}

	switch tag {
	case headerTag:
		h, err := decodeHeader(payload)
		if err != nil {
			return nil, nil, &DecodeError{Offset: payloadStart, Chunk: chunkIndex, Track: -1, Err: err}
		}
		return h, nil, nil
	case trackTag:
		t, anomalies, err := decodeTrack(payload, payloadStart, chunkIndex, trackIndex)
		if err != nil {
			// The payload region ran out mid-event: the declared
			// length lies about where the events end.
			var de *DecodeError
			if errors.As(err, &de) && errors.Is(de.Err, scanner.ErrUnexpectedEndOfData) {
				de.Err = fmt.Errorf("%w: events overrun the declared length %v",
					ErrChunkLengthMismatch, length)
			}
			return nil, nil, err
		}
		return t, anomalies, nil
	default:
		return &Alien{RawTag: tag, Data: append([]byte(nil), payload...)}, nil, nil
	}
}

// appendChunk serializes the payload first so the length field is
// always the exact byte count, then writes tag, length and payload.
func appendChunk(b *scanner.Builder, c Chunk) error {
	payload := scanner.NewBuilder()
	if err := c.appendPayload(payload); err != nil {
		return err
	}
	if uint64(payload.Len()) > math.MaxUint32 {
		return outOfRange("chunk length", int64(payload.Len()))
	}
	tag := c.Tag()
	b.Raw(tag[:])
	b.Uint32(uint32(payload.Len()))
	b.Raw(payload.Bytes())
	return nil
}
