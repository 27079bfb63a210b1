package midi

import (
	"os"

	"github.com/pkg/errors"

	"github.com/Cierra-Runis/relocate/smf"
)

// ReadMidiFile loads and decodes a standard MIDI file from disk.
// Anomalies come back alongside the document; only hard failures
// produce an error.
func ReadMidiFile(filepath string) (*smf.File, []smf.Anomaly, error) {
	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "reading midi file %v", filepath)
	}
	f, anomalies, err := smf.Decode(dat)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "parsing midi file %v", filepath)
	}
	return f, anomalies, nil
}

// WriteMidiFile encodes a document and writes it to disk.
func WriteMidiFile(filepath string, f *smf.File) error {
	dat, err := f.Encode()
	if err != nil {
		return errors.Wrapf(err, "encoding midi file %v", filepath)
	}
	if err := os.WriteFile(filepath, dat, 0644); err != nil {
		return errors.Wrapf(err, "writing midi file %v", filepath)
	}
	return nil
}
