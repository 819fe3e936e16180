package bigendian

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Reader wraps an io.Reader with position tracking and big-endian read
// methods matching the class file primitive widths (u1, u2, u4, u8).
type Reader struct {
	r   io.ByteReader
	pos int
}

// NewReader creates a new Reader wrapping the given io.ByteReader.
func NewReader(r io.ByteReader) *Reader {
	return &Reader{r: r, pos: 0}
}

// Position returns the current byte position.
func (r *Reader) Position() int {
	return r.pos
}

// U1 reads a single byte and advances the position.
func (r *Reader) U1() (uint8, error) {
	b, err := r.r.ReadByte()
	if err != nil {
		return 0, err
	}
	r.pos++
	return b, nil
}

// U2 reads a big-endian uint16.
func (r *Reader) U2() (uint16, error) {
	buf, err := r.Bytes(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(buf), nil
}

// U4 reads a big-endian uint32.
func (r *Reader) U4() (uint32, error) {
	buf, err := r.Bytes(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(buf), nil
}

// U8 reads a big-endian uint64.
func (r *Reader) U8() (uint64, error) {
	buf, err := r.Bytes(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(buf), nil
}

// initialChunk bounds the upfront allocation so a malformed length field
// cannot force a huge buffer before the short read surfaces.
const initialChunk = 64 * 1024

// Bytes reads exactly n bytes. A short read reports io.ErrUnexpectedEOF
// unless no byte at all was consumed, in which case io.EOF propagates.
func (r *Reader) Bytes(n int) ([]byte, error) {
	capacity := n
	if capacity > initialChunk {
		capacity = initialChunk
	}
	buf := make([]byte, 0, capacity)
	for i := 0; i < n; i++ {
		b, err := r.r.ReadByte()
		if err != nil {
			if i > 0 && errors.Is(err, io.EOF) {
				err = io.ErrUnexpectedEOF
			}
			r.pos += i
			return nil, err
		}
		buf = append(buf, b)
	}
	r.pos += n
	return buf, nil
}

// ParseError carries the byte offset at which decoding failed.
type ParseError struct {
	Err      error
	Section  string
	Position int
}

func (e *ParseError) Error() string {
	if e.Section != "" {
		return fmt.Sprintf("classfile: %s at offset %d: %v", e.Section, e.Position, e.Err)
	}
	return fmt.Sprintf("classfile: at offset %d: %v", e.Position, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// WrapError creates a ParseError with the current position.
func (r *Reader) WrapError(section string, err error) error {
	return &ParseError{
		Position: r.pos,
		Section:  section,
		Err:      err,
	}
}
