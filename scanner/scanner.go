// Package scanner provides sequential, bounds-checked readers and
// writers over byte buffers, including the variable-length quantity
// encoding used throughout Standard MIDI Files.
package scanner

import (
	"errors"
	"fmt"
)

var (
	// ErrUnexpectedEndOfData means a read wanted more bytes than the
	// buffer has left.
	ErrUnexpectedEndOfData = errors.New("unexpected end of data")

	// ErrMalformedVarLen means a variable-length quantity ran past its
	// 4-byte maximum without a terminating byte.
	ErrMalformedVarLen = errors.New("malformed variable-length quantity")
)

// MaxVarLen is the largest value a variable-length quantity can hold:
// 4 bytes of 7 payload bits each.
const MaxVarLen = 1<<28 - 1

// Scanner walks a fixed byte buffer forward. It never reads out of
// bounds; a read that would do so returns ErrUnexpectedEndOfData
// with the requested and remaining sizes.
type Scanner struct {
	data []byte
	pos  int
}

func New(data []byte) *Scanner {
	return &Scanner{data: data}
}

// Position returns the number of bytes consumed so far.
func (s *Scanner) Position() int {
	return s.pos
}

// Remaining returns the number of bytes left to read.
func (s *Scanner) Remaining() int {
	return len(s.data) - s.pos
}

func (s *Scanner) fail(requested int) error {
	return fmt.Errorf("%w: requested %v byte(s), %v remaining",
		ErrUnexpectedEndOfData, requested, s.Remaining())
}

// Peek returns the next byte without consuming it.
func (s *Scanner) Peek() (byte, error) {
	if s.Remaining() < 1 {
		return 0, s.fail(1)
	}
	return s.data[s.pos], nil
}

// Next consumes and returns the next byte.
func (s *Scanner) Next() (byte, error) {
	b, err := s.Peek()
	if err != nil {
		return 0, err
	}
	s.pos++
	return b, nil
}

// Take consumes the next n bytes. The returned slice aliases the
// scanner's buffer and must not be mutated by the caller.
func (s *Scanner) Take(n int) ([]byte, error) {
	if n < 0 || s.Remaining() < n {
		return nil, s.fail(n)
	}
	out := s.data[s.pos : s.pos+n]
	s.pos += n
	return out, nil
}

// Uint16 consumes a big-endian 16-bit integer.
func (s *Scanner) Uint16() (uint16, error) {
	raw, err := s.Take(2)
	if err != nil {
		return 0, err
	}
	return uint16(raw[0])<<8 | uint16(raw[1]), nil
}

// Uint32 consumes a big-endian 32-bit integer.
func (s *Scanner) Uint32() (uint32, error) {
	raw, err := s.Take(4)
	if err != nil {
		return 0, err
	}
	return uint32(raw[0])<<24 | uint32(raw[1])<<16 |
		uint32(raw[2])<<8 | uint32(raw[3]), nil
}

// VarLen consumes a variable-length quantity: 7 bits per byte, most
// significant group first, top bit set on every byte except the last.
// At most 4 bytes may be consumed.
func (s *Scanner) VarLen() (uint32, error) {
	var value uint32
	for i := 0; ; i++ {
		if i == 4 {
			return 0, fmt.Errorf("%w: no terminating byte within 4 bytes",
				ErrMalformedVarLen)
		}
		b, err := s.Next()
		if err != nil {
			return 0, err
		}
		value = value<<7 | uint32(b&0x7F)
		if b&0x80 == 0 {
			return value, nil
		}
	}
}
