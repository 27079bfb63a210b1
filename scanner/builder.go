package scanner

import "fmt"

// Builder accumulates an output buffer. It is the write-side mirror
// of Scanner.
type Builder struct {
	buf []byte
}

func NewBuilder() *Builder {
	return &Builder{}
}

// Bytes returns the accumulated buffer.
func (b *Builder) Bytes() []byte {
	return b.buf
}

// Len returns the number of bytes written so far.
func (b *Builder) Len() int {
	return len(b.buf)
}

func (b *Builder) Byte(v byte) {
	b.buf = append(b.buf, v)
}

func (b *Builder) Raw(p []byte) {
	b.buf = append(b.buf, p...)
}

func (b *Builder) Uint16(v uint16) {
	b.buf = append(b.buf, byte(v>>8), byte(v))
}

func (b *Builder) Uint32(v uint32) {
	b.buf = append(b.buf, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

// VarLen writes v as a variable-length quantity using the fewest
// bytes possible. Zero encodes as a single 0x00 byte.
func (b *Builder) VarLen(v uint32) error {
	if v > MaxVarLen {
		return fmt.Errorf("%w: %v exceeds %v", ErrMalformedVarLen, v, uint32(MaxVarLen))
	}
	var groups [4]byte
	n := 0
	for {
		groups[n] = byte(v & 0x7F)
		n++
		v >>= 7
		if v == 0 {
			break
		}
	}
	for i := n - 1; i >= 0; i-- {
		g := groups[i]
		if i > 0 {
			g |= 0x80
		}
		b.buf = append(b.buf, g)
	}
	return nil
}
