package bitio

import "testing"

func TestWriter_AppendMSBFirst(t *testing.T) {
	buf := make([]byte, 4)
	var w Writer
	w.Init(buf, len(buf))

	w.Append(4, 0b1010)
	w.Append(4, 0b0110)

	got := w.Bytes()
	want := []byte{0b10100110}
	if len(got) != 1 || got[0] != want[0] {
		t.Fatalf("Bytes() = %08b, want %08b", got, want)
	}
}

func TestWriter_BitCount(t *testing.T) {
	buf := make([]byte, 8)
	var w Writer
	w.Init(buf, len(buf))

	w.Append(3, 0b101)
	if w.BitCount() != 3 {
		t.Fatalf("BitCount() = %d, want 3", w.BitCount())
	}
	w.Append(13, 0)
	if w.BitCount() != 16 {
		t.Fatalf("BitCount() = %d, want 16", w.BitCount())
	}
}

func TestWriter_FlushPadsToByteBoundary(t *testing.T) {
	buf := make([]byte, 4)
	var w Writer
	w.Init(buf, len(buf))

	w.Append(3, 0b110)
	written := w.Flush()

	if written != 3 {
		t.Fatalf("Flush() returned %d, want 3", written)
	}
	if w.BitCount() != 8 {
		t.Fatalf("BitCount() after Flush = %d, want 8", w.BitCount())
	}
	if got := w.Bytes()[0]; got != 0b11000000 {
		t.Fatalf("Bytes()[0] = %08b, want %08b", got, 0b11000000)
	}
}

func TestWriter_OverflowPanics(t *testing.T) {
	buf := make([]byte, 1)
	var w Writer
	w.Init(buf, len(buf))

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on overflow")
		}
	}()
	w.Append(8, 0xFF)
	w.Append(8, 0xFF)
}

func TestWriter_LongRun(t *testing.T) {
	// Exercise the accumulator across many Append calls that never
	// land on a byte boundary individually, to catch any drift in the
	// MSB-first packing.
	buf := make([]byte, 256)
	var w Writer
	w.Init(buf, len(buf))

	for i := 0; i < 100; i++ {
		w.Append(3, uint32(i%8))
	}
	written := w.Flush()
	if written != 300 {
		t.Fatalf("Flush() = %d, want 300", written)
	}
}
