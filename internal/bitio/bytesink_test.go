package bitio

import "testing"

func TestByteSink_PutU8AndLE32(t *testing.T) {
	buf := make([]byte, 16)
	s := NewByteSink(buf)

	s.PutU8(0xAB)
	s.PutLE32(0x11223344)

	if s.Tell() != 5 {
		t.Fatalf("Tell() = %d, want 5", s.Tell())
	}
	want := []byte{0xAB, 0x44, 0x33, 0x22, 0x11}
	if string(s.Bytes()[:5]) != string(want) {
		t.Fatalf("Bytes()[:5] = % x, want % x", s.Bytes()[:5], want)
	}
}

func TestByteSink_SeekInterleave(t *testing.T) {
	// Mirrors the plane encoder's offset-table/bit-data interleave
	// pattern for a single slice: write the offset, seek past the
	// data region, write the payload, seek back.
	buf := make([]byte, 16)
	s := NewByteSink(buf)

	payload := []byte{0x01, 0x02, 0x03, 0x04}
	offset := uint32(len(payload))

	s.PutLE32(offset)
	s.SeekRelative(0) // no remaining offset slots for a single slice
	s.PutBytes(payload)
	s.SeekRelative(-int(offset))

	if s.Tell() != 4 {
		t.Fatalf("Tell() = %d, want 4 (back at offset-table cursor)", s.Tell())
	}

	s.SeekRelative(int(offset))
	if s.Tell() != 8 {
		t.Fatalf("Tell() after final seek = %d, want 8", s.Tell())
	}
}

func TestByteSink_PutBytes(t *testing.T) {
	buf := make([]byte, 8)
	s := NewByteSink(buf)
	s.PutBytes([]byte{1, 2, 3})
	if s.Tell() != 3 {
		t.Fatalf("Tell() = %d, want 3", s.Tell())
	}
}
