package smf

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrChunkLengthMismatch means a chunk's declared length does not
	// cover the structures inside its payload.
	ErrChunkLengthMismatch = errors.New("chunk length mismatch")

	// ErrInvalidHeaderLength means an MThd payload was not exactly 6
	// bytes long.
	ErrInvalidHeaderLength = errors.New("invalid header length")

	// ErrMissingStatusByte means a track event started with a data
	// byte before any explicit status byte was seen in that track.
	ErrMissingStatusByte = errors.New("missing status byte")

	// ErrInvalidStatusByte means a status byte that cannot occur in
	// track data (0xF1-0xF6, 0xF8-0xFE) was encountered.
	ErrInvalidStatusByte = errors.New("invalid status byte")

	// ErrValueOutOfRange means a document carries a value that cannot
	// be represented in the file format.
	ErrValueOutOfRange = errors.New("value out of range")

	// ErrUnsupportedDivision is reserved. Every 16-bit division value
	// currently decodes to either ticks-per-quarter-note or a SMPTE
	// time code, so decoding never produces it.
	ErrUnsupportedDivision = errors.New("unsupported division encoding")
)

// DecodeError wraps a hard decode failure with the position it
// happened at. Chunk and Track are indexes into the document being
// decoded; Track is -1 outside track payloads.
type DecodeError struct {
	Offset int
	Chunk  int
	Track  int
	Err    error
}

func (e *DecodeError) Error() string {
	where := fmt.Sprintf("byte %v, chunk %v", e.Offset, e.Chunk)
	if e.Track >= 0 {
		where += fmt.Sprintf(", track %v", e.Track)
	}
	return fmt.Sprintf("decode failed at %v: %v", where, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// EncodeError reports a document value that does not fit the file
// format. It unwraps to ErrValueOutOfRange.
type EncodeError struct {
	Field string
	Value int64
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("%v out of range for %v", e.Value, e.Field)
}

func (e *EncodeError) Unwrap() error {
	return ErrValueOutOfRange
}

func outOfRange(field string, value int64) error {
	return &EncodeError{Field: field, Value: value}
}

// AnomalyKind classifies the non-fatal oddities a decode can surface
// alongside a successfully parsed document.
type AnomalyKind int

const (
	// AnomalyMissingHeaderChunk: the file does not start with an MThd
	// chunk.
	AnomalyMissingHeaderChunk AnomalyKind = iota
	// AnomalyTrailingDataAfterEndOfTrack: bytes remained in a track
	// payload after its end-of-track event. Some encoders pad tracks.
	AnomalyTrailingDataAfterEndOfTrack
	// AnomalyTrackCountMismatch: the header's declared track count
	// differs from the number of MTrk chunks present.
	AnomalyTrackCountMismatch
	// AnomalyUnknownFormat: the header format is not 0, 1 or 2.
	AnomalyUnknownFormat
	// AnomalySingleTrackFormatViolation: a format 0 header declares a
	// track count other than 1.
	AnomalySingleTrackFormatViolation
)

func (k AnomalyKind) String() string {
	switch k {
	case AnomalyMissingHeaderChunk:
		return "missing header chunk"
	case AnomalyTrailingDataAfterEndOfTrack:
		return "trailing data after end of track"
	case AnomalyTrackCountMismatch:
		return "track count mismatch"
	case AnomalyUnknownFormat:
		return "unknown format"
	case AnomalySingleTrackFormatViolation:
		return "single track format violation"
	}
	return fmt.Sprintf("anomaly %v", int(k))
}

// Anomaly is a warning-level deviation found while decoding. Decoding
// still succeeds; callers decide how much they care. Chunk and Track
// are -1 when the anomaly is not tied to a particular chunk or track.
type Anomaly struct {
	Kind   AnomalyKind
	Chunk  int
	Track  int
	Detail string
}

func (a Anomaly) String() string {
	var sb strings.Builder
	sb.WriteString(a.Kind.String())
	if a.Chunk >= 0 {
		fmt.Fprintf(&sb, " (chunk %v", a.Chunk)
		if a.Track >= 0 {
			fmt.Fprintf(&sb, ", track %v", a.Track)
		}
		sb.WriteString(")")
	}
	if a.Detail != "" {
		sb.WriteString(": ")
		sb.WriteString(a.Detail)
	}
	return sb.String()
}
