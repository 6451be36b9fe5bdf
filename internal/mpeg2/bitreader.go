package mpeg2

import (
	"bytes"
	"fmt"

	"github.com/Eyevinn/mp4ff/bits"
)

const maxReadBits = 32

// BitReader reads MSB-first bit fields from an immutable byte buffer.
// After a failed read the reader is exhausted and all further reads fail.
type BitReader struct {
	r         *bits.Reader
	pos       int
	size      int
	exhausted bool
}

func NewBitReader(buf []byte) *BitReader {
	return &BitReader{
		r:    bits.NewReader(bytes.NewReader(buf)),
		size: 8 * len(buf),
	}
}

// ReadBits reads n bits, 1 <= n <= 32, and returns the value together with
// the bits consumed as a string of '0' and '1' characters.
func (b *BitReader) ReadBits(n int) (uint32, string, error) {
	if n < 1 || n > maxReadBits {
		return 0, "", fmt.Errorf("%w: %d", ErrInvalidWidth, n)
	}
	if b.exhausted || b.pos+n > b.size {
		b.exhausted = true
		b.pos = b.size
		return 0, "", ErrBufferOverrun
	}
	v := uint32(b.r.Read(n))
	if err := b.r.AccError(); err != nil {
		b.exhausted = true
		b.pos = b.size
		return 0, "", fmt.Errorf("%w: %v", ErrBufferOverrun, err)
	}
	b.pos += n
	return v, fmt.Sprintf("%0*b", n, v), nil
}

// Pos returns the number of bits consumed so far.
func (b *BitReader) Pos() int {
	return b.pos
}

func (b *BitReader) BitsLeft() int {
	return b.size - b.pos
}
