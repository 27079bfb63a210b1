// Package smf decodes and encodes Standard MIDI Files. Decoding turns
// a byte buffer into a File, an ordered sequence of chunks, collecting
// warning-level anomalies on the side; encoding is the exact mirror
// and reproduces a decoded file byte for byte.
package smf

import (
	"fmt"

	"github.com/Cierra-Runis/relocate/scanner"
)

// File is a whole SMF document: its chunks in file order. The first
// chunk is conventionally the header, but files that break the
// convention still decode (with an anomaly).
type File struct {
	Chunks []Chunk
}

// Decode parses data as a complete SMF file. Hard errors abort and
// carry the byte offset and chunk/track indexes of the failure;
// tolerated deviations come back as anomalies next to the document.
// Trailing bytes that cannot be framed as a chunk are an error, never
// silently dropped.
func Decode(data []byte) (*File, []Anomaly, error) {
	s := scanner.New(data)
	f := &File{}
	var anomalies []Anomaly
	trackIndex := 0
	for s.Remaining() > 0 {
		c, anoms, err := decodeChunk(s, len(f.Chunks), trackIndex)
		if err != nil {
			return nil, nil, err
		}
		anomalies = append(anomalies, anoms...)
		if _, ok := c.(*Track); ok {
			trackIndex++
		}
		f.Chunks = append(f.Chunks, c)
	}
	return f, append(anomalies, documentAnomalies(f)...), nil
}

// Encode serializes the document's chunks in order, nothing added,
// nothing reordered. It fails before emitting anything for a chunk
// whose values cannot be represented in the format.
func (f *File) Encode() ([]byte, error) {
	b := scanner.NewBuilder()
	for i, c := range f.Chunks {
		if err := appendChunk(b, c); err != nil {
			return nil, fmt.Errorf("chunk %v: %w", i, err)
		}
	}
	return b.Bytes(), nil
}

// Header returns the file's first header chunk, or nil.
func (f *File) Header() *Header {
	for _, c := range f.Chunks {
		if h, ok := c.(*Header); ok {
			return h
		}
	}
	return nil
}

// Tracks returns the file's track chunks in order.
func (f *File) Tracks() []*Track {
	var tracks []*Track
	for _, c := range f.Chunks {
		if t, ok := c.(*Track); ok {
			tracks = append(tracks, t)
		}
	}
	return tracks
}

// Aliens returns the file's unrecognized chunks in order.
func (f *File) Aliens() []*Alien {
	var aliens []*Alien
	for _, c := range f.Chunks {
		if a, ok := c.(*Alien); ok {
			aliens = append(aliens, a)
		}
	}
	return aliens
}

// documentAnomalies checks the document-level conventions: a leading
// header chunk, a format in the known set, and declared track counts
// that match reality. None of these abort a decode.
func documentAnomalies(f *File) []Anomaly {
	var anomalies []Anomaly

	var header *Header
	if len(f.Chunks) > 0 {
		header, _ = f.Chunks[0].(*Header)
	}
	if header == nil {
		anomalies = append(anomalies, Anomaly{
			Kind:   AnomalyMissingHeaderChunk,
			Chunk:  -1,
			Track:  -1,
			Detail: "file does not start with MThd",
		})
		return anomalies
	}

	if header.Format > FormatSequentiallyIndependentTracks {
		anomalies = append(anomalies, Anomaly{
			Kind:   AnomalyUnknownFormat,
			Chunk:  0,
			Track:  -1,
			Detail: fmt.Sprintf("format %v", header.Format),
		})
	}
	if header.Format == FormatSingleMultiChannelTrack && header.TrackCount != 1 {
		anomalies = append(anomalies, Anomaly{
			Kind:   AnomalySingleTrackFormatViolation,
			Chunk:  0,
			Track:  -1,
			Detail: fmt.Sprintf("format 0 declares %v tracks", header.TrackCount),
		})
	}
	if actual := len(f.Tracks()); actual != int(header.TrackCount) {
		anomalies = append(anomalies, Anomaly{
			Kind:   AnomalyTrackCountMismatch,
			Chunk:  0,
			Track:  -1,
			Detail: fmt.Sprintf("header declares %v, file has %v", header.TrackCount, actual),
		})
	}
	return anomalies
}
