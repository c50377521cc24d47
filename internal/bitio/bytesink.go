package bitio

import "encoding/binary"

// ByteSink is a little-endian writer over a preallocated output buffer
// (spec §4.B). It supports absolute and relative positioning so the
// plane encoder can interleave a slice-offset table with slice bit data
// written in a separate pass (spec §4.G, §9 "Byte-sink seek interleave").
//
// A ByteSink never grows its buffer: the caller (the frame encoder) is
// responsible for sizing the destination to the packet bound from
// spec §3 before encoding begins.
type ByteSink struct {
	buf []byte
	pos int
}

// NewByteSink wraps buf for writing, starting at offset zero.
func NewByteSink(buf []byte) *ByteSink {
	return &ByteSink{buf: buf}
}

// Tell returns the current write offset.
func (s *ByteSink) Tell() int {
	return s.pos
}

// SeekRelative moves the write cursor by delta bytes, which may be
// negative to move backward (used to return to the slice-offset table
// after writing a slice's bit data out of sequence).
func (s *ByteSink) SeekRelative(delta int) {
	s.pos += delta
}

// PutU8 writes a single byte and advances the cursor by one.
func (s *ByteSink) PutU8(v byte) {
	s.buf[s.pos] = v
	s.pos++
}

// PutLE32 writes v as a little-endian 32-bit integer and advances the
// cursor by four.
func (s *ByteSink) PutLE32(v uint32) {
	binary.LittleEndian.PutUint32(s.buf[s.pos:s.pos+4], v)
	s.pos += 4
}

// PutBytes copies span into the buffer at the current cursor and
// advances the cursor by the number of bytes copied. Bytes of span that
// do not fit before the end of the buffer are dropped without error.
func (s *ByteSink) PutBytes(span []byte) {
	n := copy(s.buf[s.pos:], span)
	s.pos += n
}

// Bytes returns the full underlying destination buffer (not truncated
// to the written length; callers truncate using Tell()).
func (s *ByteSink) Bytes() []byte {
	return s.buf
}
