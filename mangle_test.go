package utvideoenc

import "testing"

func TestMangleRGBPlanes(t *testing.T) {
	// spec §8 scenario 3: R=10, G=20, B=30 -> R'=118, B'=138, G unchanged.
	buf := []byte{10, 20, 30}
	mangleRGBPlanes(buf, 3, 3, 1, 1)

	if buf[0] != 118 {
		t.Errorf("R' = %d, want 118", buf[0])
	}
	if buf[1] != 20 {
		t.Errorf("G = %d, want unchanged 20", buf[1])
	}
	if buf[2] != 138 {
		t.Errorf("B' = %d, want 138", buf[2])
	}
}

func TestMangleRGBPlanes_IdentityWhenGreenIsMidpoint(t *testing.T) {
	// When G == 0x80 the transform cancels out: R' = R, B' = B.
	buf := []byte{0x40, 0x80, 0xC0, 0x10, 0x80, 0xF0}
	mangleRGBPlanes(buf, 3, 6, 2, 1)

	want := []byte{0x40, 0x80, 0xC0, 0x10, 0x80, 0xF0}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("buf[%d] = 0x%02x, want 0x%02x", i, buf[i], want[i])
		}
	}
}

func TestMangleRGBPlanes_MultiRow(t *testing.T) {
	// Two rows with a stride gap to make sure the row pointer advances
	// past padding correctly.
	buf := []byte{
		10, 20, 30, 0, 0, // row 0 (2 bytes of padding)
		1, 2, 3, 0, 0, // row 1
	}
	mangleRGBPlanes(buf, 3, 5, 1, 2)

	if buf[0] != 118 || buf[2] != 138 {
		t.Fatalf("row0 = % x, want R'=118 B'=138", buf[:3])
	}
	if buf[5] != byte(1-2+0x80) || buf[7] != byte(3-2+0x80) {
		t.Fatalf("row1 = % x", buf[5:8])
	}
}
